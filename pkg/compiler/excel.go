package compiler

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/osakit/osakit/pkg/capability"
	"github.com/osakit/osakit/pkg/command"
)

// renderExcel emits the Excel dictionary's syntax. Cell-level commands
// address a worksheet reference; document-level commands address the
// workbook.
func renderExcel(b *builder, t *capability.Table, cmd command.Command) error {
	switch c := cmd.(type) {
	case command.CreateDocument:
		b.linef("make new workbook")

	case command.OpenDocument:
		b.linef("open workbook workbook file name %s", quote(c.Path))

	case command.SaveDocument:
		target := ref(c.Target, "workbook")
		if c.Path == "" {
			b.linef("save %s", target)
		} else {
			b.linef("save workbook as %s filename %s", target, quote(c.Path))
		}

	case command.CloseDocument:
		b.linef("close %s %s", ref(c.Target, "workbook"), saving(c.Saving))

	case command.SetCellValue:
		b.linef("set value of range %s of %s to %s", quote(c.Cell), sheetRef(c.Sheet), value(c.Value))

	case command.SetFormula:
		b.linef("set formula of range %s of %s to %s", quote(c.Cell), sheetRef(c.Sheet), quote(c.Formula))

	case command.SetRange:
		b.linef("set value of range %s of %s to %s", quote(c.Range), sheetRef(c.Sheet), valueRows(c.Rows))

	case command.SetFontProperty:
		return renderExcelFont(b, c)

	case command.AddTable:
		sheet := sheetRef(c.Target)
		b.linef("make new list object at end of %s with properties {range object:range %s of %s}",
			sheet, quote(c.Anchor), sheet)

	case command.SetHeaderFooter:
		slot := "center header"
		if c.Kind == command.Footer {
			slot = "center footer"
		}
		b.linef("set %s of page setup object of %s to %s", slot, sheetRef(c.Target), quote(c.Text))

	default:
		return errors.Errorf("command %T is not valid for Excel", cmd)
	}
	return nil
}

func renderExcelFont(b *builder, c command.SetFontProperty) error {
	font := "font object of range " + quote(c.Range) + " of " + sheetRef(c.Target)

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
		b.linef("set font color of %s to %s", font, rgb(*c.Color))
	default:
		return errors.Errorf("font property %q has no Excel rendering", c.Property)
	}
	return nil
}

// valueRows renders a rectangular block as nested AppleScript lists,
// row-major, matching what a multi-cell range assignment expects.
func valueRows(rows [][]command.Value) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('{')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(value(v))
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('}')
	return sb.String()
}
