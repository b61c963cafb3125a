package tool

import (
	"github.com/osakit/osakit/pkg/command"
)

// buildCommand maps the flat JSON input onto a typed command variant.
// Unknown actions and unconvertible values are malformed; everything else
// is left to the command's own Validate.
func buildCommand(input *Input) (command.Command, error) {
	app, err := command.ParseApplication(input.Application)
	if err != nil {
		return nil, err
	}
	target := toRef(input.Target)

	switch input.Action {
	case "create_document":
		return command.CreateDocument{App: app}, nil
	case "open_document":
		return command.OpenDocument{App: app, Path: input.Path}, nil
	case "save_document":
		return command.SaveDocument{App: app, Target: target, Path: input.Path}, nil
	case "close_document":
		return command.CloseDocument{App: app, Target: target, Saving: input.Saving}, nil
	case "add_slide":
		return command.AddSlide{Presentation: target, Layout: command.Layout(input.Layout)}, nil
	case "set_shape_text":
		return command.SetShapeText{Presentation: target, Slide: input.Slide, Shape: input.Shape, Text: input.Text}, nil
	case "set_font":
		cmd := command.SetFontProperty{
			App:      app,
			Target:   target,
			Slide:    input.Slide,
			Shape:    input.Shape,
			Range:    input.Range,
			Property: command.FontProperty(input.Prop),
			Flag:     input.Flag,
			Size:     input.Size,
			Font:     input.Font,
		}
		if len(input.Color) > 0 {
			if len(input.Color) != 3 {
				return nil, &command.MalformedError{Reason: "color must be an RGB triple"}
			}
			cmd.Color = &command.RGB{Red: input.Color[0], Green: input.Color[1], Blue: input.Color[2]}
		}
		return cmd, nil
	case "add_picture":
		return command.AddPicture{
			Presentation: target,
			Slide:        input.Slide,
			Path:         input.Path,
			Left:         input.Left,
			Top:          input.Top,
			Width:        input.Width,
			Height:       input.Height,
		}, nil
	case "add_shape":
		return command.AddShape{
			Presentation: target,
			Slide:        input.Slide,
			Shape:        command.ShapeType(input.Draw),
			Left:         input.Left,
			Top:          input.Top,
			Width:        input.Width,
			Height:       input.Height,
		}, nil
	case "apply_transition":
		return command.ApplyTransition{
			Presentation: target,
			Slide:        input.Slide,
			Effect:       command.TransitionEffect(input.Effect),
			Speed:        command.TransitionSpeed(input.Speed),
		}, nil
	case "set_cell_value":
		v, err := toValue(input.Value)
		if err != nil {
			return nil, err
		}
		return command.SetCellValue{Sheet: target, Cell: input.Cell, Value: v}, nil
	case "set_formula":
		return command.SetFormula{Sheet: target, Cell: input.Cell, Formula: input.Formula}, nil
	case "set_range":
		rows := make([][]command.Value, 0, len(input.RowData))
		for _, raw := range input.RowData {
			row := make([]command.Value, 0, len(raw))
			for _, cell := range raw {
				v, err := toValue(cell)
				if err != nil {
					return nil, err
				}
				row = append(row, v)
			}
			rows = append(rows, row)
		}
		return command.SetRange{Sheet: target, Range: input.Range, Rows: rows}, nil
	case "create_text_range":
		return command.CreateTextRange{Document: target, Start: input.Start, End: input.End}, nil
	case "find_replace":
		return command.FindReplace{Document: target, Find: input.Find, Replace: input.Replace, ReplaceAll: input.All}, nil
	case "add_table":
		return command.AddTable{
			App:     app,
			Target:  target,
			Rows:    input.Rows,
			Columns: input.Columns,
			Slide:   input.Slide,
			Anchor:  input.Anchor,
		}, nil
	case "set_header_footer":
		return command.SetHeaderFooter{App: app, Target: target, Kind: command.HeaderFooterKind(input.Kind), Text: input.Text}, nil
	case "":
		return nil, &command.MalformedError{Reason: "action is required"}
	default:
		return nil, &command.MalformedError{Reason: "unknown action " + input.Action}
	}
}

// toRef converts the JSON target. An omitted target means the front-most
// object, matching how the skill documents address documents by default.
func toRef(t *Target) command.Ref {
	if t == nil {
		return command.ActiveRef()
	}
	switch {
	case t.Active:
		return command.ActiveRef()
	case t.Name != "":
		return command.NamedRef(t.Name)
	case t.Index != 0:
		return command.IndexedRef(t.Index)
	default:
		return command.Ref{}
	}
}

func toValue(raw any) (command.Value, error) {
	switch v := raw.(type) {
	case nil:
		return command.Value{}, &command.MalformedError{Reason: "missing cell value"}
	case string:
		return command.Text(v), nil
	case float64:
		return command.Number(v), nil
	case bool:
		return command.Bool(v), nil
	default:
		return command.Value{}, &command.MalformedError{Reason: "cell values must be strings, numbers, or booleans"}
	}
}
