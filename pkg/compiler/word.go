package compiler

import (
	"github.com/pkg/errors"

	"github.com/osakit/osakit/pkg/capability"
	"github.com/osakit/osakit/pkg/command"
)

// renderWord emits the Word dictionary's syntax. Range creation always
// carries an explicit document reference: the create range verb with bare
// offsets targets whatever Word considers current, which is exactly the
// ambiguity the Ref model exists to prevent.
func renderWord(b *builder, t *capability.Table, cmd command.Command) error {
	switch c := cmd.(type) {
	case command.CreateDocument:
		b.linef("make new document")

	case command.OpenDocument:
		b.linef("open POSIX file %s", quote(c.Path))

	case command.SaveDocument:
		target := ref(c.Target, "document")
		if c.Path == "" {
			b.linef("save %s", target)
		} else {
			b.linef("save as %s file name %s", target, quote(c.Path))
		}

	case command.CloseDocument:
		b.linef("close %s %s", ref(c.Target, "document"), saving(c.Saving))

	case command.SetFontProperty:
		return renderWordFont(b, c)

	case command.CreateTextRange:
		b.linef("create range %s start %d end %d", ref(c.Document, "document"), c.Start, c.End)

	case command.FindReplace:
		scope := "replace one"
		if c.ReplaceAll {
			scope = "replace all"
		}
		b.linef("set findScope to find object of text object of %s", ref(c.Document, "document"))
		b.linef("execute find findScope find text %s replace with %s replace %s",
			quote(c.Find), quote(c.Replace), scope)

	case command.AddTable:
		b.linef("make new table at %s with properties {number of rows:%d, number of columns:%d}",
			ref(c.Target, "document"), c.Rows, c.Columns)

	case command.SetHeaderFooter:
		verb := "get header"
		if c.Kind == command.Footer {
			verb = "get footer"
		}
		b.linef("set content of text object of (%s of section 1 of %s index header footer primary) to %s",
			verb, ref(c.Target, "document"), quote(c.Text))

	default:
		return errors.Errorf("command %T is not valid for Word", cmd)
	}
	return nil
}

func renderWordFont(b *builder, c command.SetFontProperty) error {
	font := "font object of text object of " + ref(c.Target, "document")

	switch c.Property {
	case command.FontBold:
		b.linef("set bold of %s to %s", font, boolean(c.Flag))
	case command.FontItalic:
		b.linef("set italic of %s to %s", font, boolean(c.Flag))
	case command.FontUnderline:
		b.linef("set underline of %s to %s", font, boolean(c.Flag))
	case command.FontSize:
		b.linef("set font size of %s to %s", font, number(c.Size))
	case command.FontName:
		b.linef("set name of %s to %s", font, quote(c.Font))
	case command.FontColor:
		b.linef("set color of %s to %s", font, rgb(*c.Color))
	default:
		return errors.Errorf("font property %q has no Word rendering", c.Property)
	}
	return nil
}
