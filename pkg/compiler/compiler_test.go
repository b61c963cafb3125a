package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osakit/osakit/pkg/capability"
	"github.com/osakit/osakit/pkg/command"
)

// newCompiler loads the shipped capability tables so tests exercise the
// same empirical record production callers get.
func newCompiler(t *testing.T) *Compiler {
	t.Helper()
	set, err := capability.LoadDir("../../capabilities")
	require.NoError(t, err)
	return New(set)
}

func TestAddSlideWithSupportedLayout(t *testing.T) {
	c := newCompiler(t)

	script, err := c.Compile(command.AddSlide{
		Presentation: command.ActiveRef(),
		Layout:       command.LayoutTitleSlide,
	})
	require.NoError(t, err)

	assert.Equal(t, command.PowerPoint, script.Application)
	assert.Contains(t, script.Source, `tell application "Microsoft PowerPoint"`)
	assert.Contains(t, script.Source, "slide layout title slide")
	assert.Contains(t, script.Source, "active presentation")
	assert.Contains(t, script.Source, "end tell")
}

func TestPowerPointBoldIsRejected(t *testing.T) {
	c := newCompiler(t)

	_, err := c.Compile(command.SetFontProperty{
		App:      command.PowerPoint,
		Target:   command.ActiveRef(),
		Slide:    1,
		Shape:    1,
		Property: command.FontBold,
		Flag:     true,
	})
	require.Error(t, err)

	var unsupported *UnsupportedFeatureError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, command.PowerPoint, unsupported.Application)
	assert.Equal(t, capability.Feature{Category: "font", Name: "bold"}, unsupported.Feature)
	assert.NotEmpty(t, unsupported.Note)
}

func TestTransitionSpeedFailsWholeCommand(t *testing.T) {
	c := newCompiler(t)

	// the effect alone would compile; adding the broken speed field must
	// fail the whole command, not emit a partial script
	cmd := command.ApplyTransition{
		Presentation: command.ActiveRef(),
		Slide:        1,
		Effect:       command.TransitionDissolve,
		Speed:        command.SpeedFast,
	}
	_, err := c.Compile(cmd)
	require.Error(t, err)

	var unsupported *UnsupportedFeatureError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, command.PowerPoint, unsupported.Application)
	assert.Equal(t, capability.Feature{Category: "transition", Name: "speed"}, unsupported.Feature)

	cmd.Speed = ""
	script, err := c.Compile(cmd)
	require.NoError(t, err)
	assert.Contains(t, script.Source, "dissolve")
}

func TestCreateTextRangeRequiresDocument(t *testing.T) {
	c := newCompiler(t)

	_, err := c.Compile(command.CreateTextRange{Start: 0, End: 0})
	require.Error(t, err)

	var malformed *command.MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "document reference")
}

func TestTextRangeOutputCarriesDocumentReference(t *testing.T) {
	c := newCompiler(t)

	script, err := c.Compile(command.CreateTextRange{
		Document: command.ActiveRef(),
		Start:    0,
		End:      120,
	})
	require.NoError(t, err)
	assert.Contains(t, script.Source, "create range active document start 0 end 120")
}

func TestIndicesBelowOneAreNeverClamped(t *testing.T) {
	c := newCompiler(t)

	commands := []command.Command{
		command.SetShapeText{Presentation: command.ActiveRef(), Slide: 0, Shape: 1, Text: "x"},
		command.AddPicture{Presentation: command.ActiveRef(), Slide: -1, Path: "/tmp/x.png"},
		command.CloseDocument{App: command.Word, Target: command.IndexedRef(0)},
		command.AddTable{App: command.Word, Target: command.ActiveRef(), Rows: 0, Columns: 1},
	}
	for _, cmd := range commands {
		_, err := c.Compile(cmd)
		var malformed *command.MalformedError
		require.ErrorAs(t, err, &malformed, "%T", cmd)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	c := newCompiler(t)

	cmd := command.SetRange{
		Sheet: command.NamedRef("Data"),
		Range: "A1:B2",
		Rows: [][]command.Value{
			{command.Number(1.5), command.Text("naïve \"quote\"")},
			{command.Bool(true), command.Number(-3)},
		},
	}

	first, err := c.Compile(cmd)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := c.Compile(cmd)
		require.NoError(t, err)
		assert.Equal(t, first.Source, again.Source)
	}
}

func TestUnknownFeaturesAreUnsupported(t *testing.T) {
	c := newCompiler(t)

	// the PowerPoint table lists no range category at all; silence means
	// unsupported, not best-effort
	_, err := c.Compile(command.SetHeaderFooter{
		App:    command.PowerPoint,
		Target: command.ActiveRef(),
		Kind:   command.Header,
		Text:   "x",
	})
	var unsupported *UnsupportedFeatureError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, capability.Feature{Category: "headerFooter", Name: "header"}, unsupported.Feature)
}

func TestNilCommand(t *testing.T) {
	c := newCompiler(t)
	_, err := c.Compile(nil)
	var malformed *command.MalformedError
	require.ErrorAs(t, err, &malformed)
}

func TestMissingTable(t *testing.T) {
	c := New(capability.NewSet())
	_, err := c.Compile(command.CreateDocument{App: command.Word})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no capability table")
}
