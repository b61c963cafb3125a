// Package tool exposes the compiler as an agent-invocable tool: JSON
// parameters in, rendered AppleScript (and optionally its execution
// result) out. The schema is generated from the input struct so an agent
// toolchain can discover the parameter surface.
package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/osakit/osakit/pkg/bridge"
	"github.com/osakit/osakit/pkg/compiler"
)

// ScriptRunner executes a compiled script; satisfied by *bridge.Runner.
type ScriptRunner interface {
	Run(ctx context.Context, script compiler.Script) (*bridge.Result, error)
}

// OfficeScriptTool compiles office automation commands for an agent. When
// a runner is attached the tool can also hand the script to the bridge;
// without one it only returns text.
type OfficeScriptTool struct {
	compiler *compiler.Compiler
	runner   ScriptRunner
}

// Option configures an OfficeScriptTool.
type Option func(*OfficeScriptTool)

// WithRunner enables script execution through the given runner.
func WithRunner(r ScriptRunner) Option {
	return func(t *OfficeScriptTool) { t.runner = r }
}

// New builds the tool over a compiler.
func New(c *compiler.Compiler, opts ...Option) *OfficeScriptTool {
	t := &OfficeScriptTool{compiler: c}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Target selects the document, presentation, workbook, or worksheet a
// command addresses. Exactly one selector should be set; when the whole
// target is omitted the front-most object is used.
type Target struct {
	Active bool   `json:"active,omitempty" jsonschema:"description=Address the front-most object"`
	Index  int    `json:"index,omitempty" jsonschema:"description=1-based position; 1 is not the front-most object"`
	Name   string `json:"name,omitempty" jsonschema:"description=Object name such as Budget.xlsx"`
}

// Input is the tool's JSON parameter surface. Action decides which fields
// are read; unused fields are ignored.
type Input struct {
	Application string  `json:"application" jsonschema:"description=Target application,enum=powerpoint,enum=word,enum=excel"`
	Action      string  `json:"action" jsonschema:"description=The automation action to compile"`
	Target      *Target `json:"target,omitempty" jsonschema:"description=Which document/presentation/worksheet to address; defaults to the front-most one"`

	Path    string  `json:"path,omitempty" jsonschema:"description=POSIX file path for open/save/picture actions"`
	Saving  bool    `json:"saving,omitempty" jsonschema:"description=Save pending changes when closing"`
	Layout  string  `json:"layout,omitempty" jsonschema:"description=Slide layout for add_slide"`
	Slide   int     `json:"slide,omitempty" jsonschema:"description=1-based slide index"`
	Shape   int     `json:"shape,omitempty" jsonschema:"description=1-based shape index"`
	Draw    string  `json:"shapeType,omitempty" jsonschema:"description=Auto shape type for add_shape"`
	Text    string  `json:"text,omitempty" jsonschema:"description=Text content for text/header/footer actions"`
	Prop    string  `json:"property,omitempty" jsonschema:"description=Font property for set_font: bold/italic/underline/size/name/color"`
	Flag    bool    `json:"flag,omitempty" jsonschema:"description=Boolean value for bold/italic/underline"`
	Size    float64 `json:"size,omitempty" jsonschema:"description=Font size in points"`
	Font    string  `json:"font,omitempty" jsonschema:"description=Font name"`
	Color   []int   `json:"color,omitempty" jsonschema:"description=RGB triple with channels 0-255"`
	Effect  string  `json:"effect,omitempty" jsonschema:"description=Transition effect for apply_transition"`
	Speed   string  `json:"speed,omitempty" jsonschema:"description=Transition speed; known-broken on PowerPoint"`
	Left    float64 `json:"left,omitempty" jsonschema:"description=Left position in points"`
	Top     float64 `json:"top,omitempty" jsonschema:"description=Top position in points"`
	Width   float64 `json:"width,omitempty" jsonschema:"description=Width in points"`
	Height  float64 `json:"height,omitempty" jsonschema:"description=Height in points"`
	Cell    string  `json:"cell,omitempty" jsonschema:"description=A1-style cell for set_cell_value/set_formula"`
	Range   string  `json:"range,omitempty" jsonschema:"description=A1-style range"`
	Formula string  `json:"formula,omitempty" jsonschema:"description=Formula text for set_formula"`
	Value   any     `json:"value,omitempty" jsonschema:"description=Cell value as a string / number / boolean"`
	RowData [][]any `json:"rowData,omitempty" jsonschema:"description=Row-major block of values for set_range"`
	Find    string  `json:"find,omitempty" jsonschema:"description=Search text for find_replace"`
	Replace string  `json:"replace,omitempty" jsonschema:"description=Replacement text for find_replace"`
	All     bool    `json:"all,omitempty" jsonschema:"description=Replace every occurrence"`
	Rows    int     `json:"rows,omitempty" jsonschema:"description=Row count for add_table"`
	Columns int     `json:"columns,omitempty" jsonschema:"description=Column count for add_table"`
	Anchor  string  `json:"anchor,omitempty" jsonschema:"description=Top-left anchor cell for add_table on a worksheet"`
	Kind    string  `json:"kind,omitempty" jsonschema:"description=header or footer for set_header_footer"`
	Start   int     `json:"start,omitempty" jsonschema:"description=0-based start offset for create_text_range"`
	End     int     `json:"end,omitempty" jsonschema:"description=0-based end offset for create_text_range"`
	Execute bool    `json:"execute,omitempty" jsonschema:"description=Run the compiled script through osascript instead of only returning it"`
}

// ToolResult mirrors the shape agent frameworks expect back.
type ToolResult struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

func generateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// GenerateSchema returns the JSON schema of the tool's parameters.
func (t *OfficeScriptTool) GenerateSchema() *jsonschema.Schema {
	return generateSchema[Input]()
}

// Name implements the tool contract.
func (t *OfficeScriptTool) Name() string {
	return "office_script"
}

// Description implements the tool contract.
func (t *OfficeScriptTool) Description() string {
	return "Compile an automation command against Microsoft PowerPoint, Word, or Excel on macOS into AppleScript. " +
		"Commands are validated against empirical capability tables first, so known-broken properties are rejected " +
		"with the offending feature named instead of silently producing a no-op script."
}

// ValidateInput rejects undecodable or structurally invalid parameters
// before Execute is called.
func (t *OfficeScriptTool) ValidateInput(parameters string) error {
	input := &Input{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return errors.Wrap(err, "invalid parameters")
	}
	if input.Execute && t.runner == nil {
		return errors.New("script execution is not enabled for this tool")
	}
	cmd, err := buildCommand(input)
	if err != nil {
		return err
	}
	return cmd.Validate()
}

// TracingKVs reports span attributes for one invocation.
func (t *OfficeScriptTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	input := &Input{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return nil, err
	}
	return []attribute.KeyValue{
		attribute.String("application", input.Application),
		attribute.String("action", input.Action),
		attribute.Bool("execute", input.Execute),
	}, nil
}

// Execute compiles the command and, when requested, runs it through the
// bridge. Compile and bridge failures both come back in the result's
// Error field, the way agent toolchains consume them.
func (t *OfficeScriptTool) Execute(ctx context.Context, parameters string) ToolResult {
	input := &Input{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return ToolResult{Error: fmt.Sprintf("invalid parameters: %v", err)}
	}

	cmd, err := buildCommand(input)
	if err != nil {
		return ToolResult{Error: err.Error()}
	}

	script, err := t.compiler.Compile(cmd)
	if err != nil {
		return ToolResult{Error: err.Error()}
	}

	if !input.Execute {
		return ToolResult{Result: script.Source}
	}

	result, err := t.runner.Run(ctx, script)
	if err != nil {
		return ToolResult{Error: err.Error()}
	}
	return ToolResult{Result: result.Stdout}
}
