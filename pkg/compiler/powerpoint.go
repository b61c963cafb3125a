package compiler

import (
	"github.com/pkg/errors"

	"github.com/osakit/osakit/pkg/capability"
	"github.com/osakit/osakit/pkg/command"
)

// renderPowerPoint emits the PowerPoint dictionary's syntax. Traversal
// order in "of" chains is load-bearing: shape -> text frame -> text range
// -> content, never a flattened property path.
func renderPowerPoint(b *builder, t *capability.Table, cmd command.Command) error {
	switch c := cmd.(type) {
	case command.CreateDocument:
		b.linef("make new presentation")

	case command.OpenDocument:
		b.linef("open POSIX file %s", quote(c.Path))

	case command.SaveDocument:
		target := ref(c.Target, "presentation")
		if c.Path == "" {
			b.linef("save %s", target)
		} else {
			b.linef("save %s in POSIX file %s", target, quote(c.Path))
		}

	case command.CloseDocument:
		b.linef("close %s %s", ref(c.Target, "presentation"), saving(c.Saving))

	case command.AddSlide:
		layout, err := token(t, capability.Feature{Category: "layout", Name: string(c.Layout)})
		if err != nil {
			return err
		}
		b.linef("make new slide at end of %s with properties {layout:%s}", ref(c.Presentation, "presentation"), layout)

	case command.SetShapeText:
		b.linef("set content of text range of text frame of shape %d of slide %d of %s to %s",
			c.Shape, c.Slide, ref(c.Presentation, "presentation"), quote(c.Text))

	case command.SetFontProperty:
		return renderPowerPointFont(b, c)

	case command.AddPicture:
		props := "{file name:" + quote(c.Path) +
			", left position:" + number(c.Left) +
			", top:" + number(c.Top)
		if c.Width > 0 {
			props += ", width:" + number(c.Width)
		}
		if c.Height > 0 {
			props += ", height:" + number(c.Height)
		}
		props += "}"
		b.linef("make new picture at end of slide %d of %s with properties %s",
			c.Slide, ref(c.Presentation, "presentation"), props)

	case command.AddShape:
		shapeType, err := token(t, capability.Feature{Category: "shape", Name: string(c.Shape)})
		if err != nil {
			return err
		}
		b.linef("make new shape at end of slide %d of %s with properties {auto shape type:%s, left position:%s, top:%s, width:%s, height:%s}",
			c.Slide, ref(c.Presentation, "presentation"), shapeType,
			number(c.Left), number(c.Top), number(c.Width), number(c.Height))

	case command.ApplyTransition:
		effect, err := token(t, capability.Feature{Category: "transition", Name: string(c.Effect)})
		if err != nil {
			return err
		}
		transition := transitionRef(c.Slide, ref(c.Presentation, "presentation"))
		b.linef("set entry effect of %s to %s", transition, effect)
		if c.Speed != "" {
			b.linef("set transition speed of %s to %s", transition, string(c.Speed))
		}

	case command.AddTable:
		b.linef("make new table at end of slide %d of %s with properties {number of rows:%d, number of columns:%d}",
			c.Slide, ref(c.Target, "presentation"), c.Rows, c.Columns)

	case command.SetHeaderFooter:
		// Slide masters only expose the footer slot; the header slot is
		// capability-gated and rejected for PowerPoint before this point.
		b.linef("set text of %s of slide master of %s to %s",
			string(c.Kind), ref(c.Target, "presentation"), quote(c.Text))

	default:
		return errors.Errorf("command %T is not valid for PowerPoint", cmd)
	}
	return nil
}

func renderPowerPointFont(b *builder, c command.SetFontProperty) error {
	font := "font of text range of text frame of shape " + itoa(c.Shape) +
		" of slide " + itoa(c.Slide) + " of " + ref(c.Target, "presentation")

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
		b.linef("set font name of %s to %s", font, quote(c.Font))
	case command.FontColor:
		b.linef("set font color of %s to %s", font, rgb(*c.Color))
	default:
		return errors.Errorf("font property %q has no PowerPoint rendering", c.Property)
	}
	return nil
}

func transitionRef(slide int, presentation string) string {
	return "slide show transition of slide " + itoa(slide) + " of " + presentation
}
