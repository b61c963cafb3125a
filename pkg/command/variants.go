package command

// Layout names a slide layout by its capability-table identifier. The
// AppleScript constant for each layout comes from the capability table,
// never from the command itself.
type Layout string

const (
	LayoutTitleSlide    Layout = "titleSlide"
	LayoutTextSlide     Layout = "textSlide"
	LayoutTwoColumnText Layout = "twoColumnText"
	LayoutTitleOnly     Layout = "titleOnly"
	LayoutBlank         Layout = "blank"
	LayoutLargeObject   Layout = "largeObject"
)

// FontProperty names one font attribute by its capability-table identifier.
type FontProperty string

const (
	FontBold      FontProperty = "bold"
	FontItalic    FontProperty = "italic"
	FontUnderline FontProperty = "underline"
	FontSize      FontProperty = "size"
	FontName      FontProperty = "name"
	FontColor     FontProperty = "color"
)

// TransitionEffect names a slide transition by its capability-table
// identifier.
type TransitionEffect string

const (
	TransitionCut      TransitionEffect = "cut"
	TransitionFade     TransitionEffect = "fade"
	TransitionDissolve TransitionEffect = "dissolve"
	TransitionWipe     TransitionEffect = "wipe"
	TransitionPush     TransitionEffect = "push"
)

// TransitionSpeed is accepted for completeness but is known-broken in
// every tested PowerPoint release; the capability table rejects it.
type TransitionSpeed string

const (
	SpeedSlow   TransitionSpeed = "slow"
	SpeedMedium TransitionSpeed = "medium"
	SpeedFast   TransitionSpeed = "fast"
)

// ShapeType names a drawable auto shape by its capability-table identifier.
type ShapeType string

const (
	ShapeRectangle    ShapeType = "rectangle"
	ShapeOval         ShapeType = "oval"
	ShapeRoundedRect  ShapeType = "roundedRectangle"
	ShapeRightArrow   ShapeType = "rightArrow"
	ShapeIsoscelesTri ShapeType = "isoscelesTriangle"
)

// HeaderFooterKind selects which header/footer slot a SetHeaderFooter
// command writes.
type HeaderFooterKind string

const (
	Header HeaderFooterKind = "header"
	Footer HeaderFooterKind = "footer"
)

// RGB is a color triple with each channel in 0-255.
type RGB struct {
	Red   int
	Green int
	Blue  int
}

func (c RGB) validate() error {
	for _, v := range []int{c.Red, c.Green, c.Blue} {
		if v < 0 || v > 255 {
			return malformed("color channel out of range 0-255: %d", v)
		}
	}
	return nil
}

// CreateDocument creates a new document, presentation, or workbook in the
// target application.
type CreateDocument struct {
	App Application
}

func (c CreateDocument) Application() Application { return c.App }

func (c CreateDocument) Validate() error {
	return validateApp(c.App)
}

// OpenDocument opens a file by POSIX path.
type OpenDocument struct {
	App  Application
	Path string
}

func (c OpenDocument) Application() Application { return c.App }

func (c OpenDocument) Validate() error {
	if err := validateApp(c.App); err != nil {
		return err
	}
	if c.Path == "" {
		return malformed("open requires a file path")
	}
	return nil
}

// SaveDocument saves the referenced document, optionally to a new POSIX
// path ("save as" when Path is set).
type SaveDocument struct {
	App    Application
	Target Ref
	Path   string
}

func (c SaveDocument) Application() Application { return c.App }

func (c SaveDocument) Validate() error {
	if err := validateApp(c.App); err != nil {
		return err
	}
	return c.Target.validate(documentNoun(c.App))
}

// CloseDocument closes the referenced document. Saving controls whether
// pending changes are written first.
type CloseDocument struct {
	App    Application
	Target Ref
	Saving bool
}

func (c CloseDocument) Application() Application { return c.App }

func (c CloseDocument) Validate() error {
	if err := validateApp(c.App); err != nil {
		return err
	}
	return c.Target.validate(documentNoun(c.App))
}

// AddSlide appends a slide with the given layout to a presentation.
// PowerPoint only.
type AddSlide struct {
	Presentation Ref
	Layout       Layout
}

func (c AddSlide) Application() Application { return PowerPoint }

func (c AddSlide) Validate() error {
	if err := c.Presentation.validate("presentation"); err != nil {
		return err
	}
	if c.Layout == "" {
		return malformed("add slide requires a layout")
	}
	return nil
}

// SetShapeText replaces the text of a shape's text frame on a slide.
// PowerPoint only. Slide and Shape are 1-based.
type SetShapeText struct {
	Presentation Ref
	Slide        int
	Shape        int
	Text         string
}

func (c SetShapeText) Application() Application { return PowerPoint }

func (c SetShapeText) Validate() error {
	if err := c.Presentation.validate("presentation"); err != nil {
		return err
	}
	if err := requireIndex("slide", c.Slide); err != nil {
		return err
	}
	return requireIndex("shape", c.Shape)
}

// SetFontProperty mutates one font attribute. The addressed text depends
// on the application: a slide shape's text frame in PowerPoint, the body
// text object in Word, a cell range on a worksheet in Excel. Target is
// the presentation, document, or worksheet accordingly.
type SetFontProperty struct {
	App      Application
	Target   Ref
	Slide    int    // PowerPoint: 1-based slide index
	Shape    int    // PowerPoint: 1-based shape index
	Range    string // Excel: A1-style range, e.g. "B2:C4"
	Property FontProperty
	Flag     bool    // bold, italic, underline
	Size     float64 // size, in points
	Font     string  // name
	Color    *RGB    // color
}

func (c SetFontProperty) Application() Application { return c.App }

func (c SetFontProperty) Validate() error {
	if err := validateApp(c.App); err != nil {
		return err
	}
	noun := "document"
	switch c.App {
	case PowerPoint:
		noun = "presentation"
	case Excel:
		noun = "worksheet"
	}
	if err := c.Target.validate(noun); err != nil {
		return err
	}
	switch c.App {
	case PowerPoint:
		if err := requireIndex("slide", c.Slide); err != nil {
			return err
		}
		if err := requireIndex("shape", c.Shape); err != nil {
			return err
		}
	case Excel:
		if c.Range == "" {
			return malformed("font change on a workbook requires a cell range")
		}
	}
	switch c.Property {
	case FontBold, FontItalic, FontUnderline:
		return nil
	case FontSize:
		if c.Size <= 0 {
			return malformed("font size must be positive, got %g", c.Size)
		}
	case FontName:
		if c.Font == "" {
			return malformed("font name change requires a font name")
		}
	case FontColor:
		if c.Color == nil {
			return malformed("font color change requires a color")
		}
		return c.Color.validate()
	case "":
		return malformed("font change requires a property")
	default:
		return malformed("unknown font property %q", c.Property)
	}
	return nil
}

// AddPicture places a picture file on a slide. Positions are in points.
// PowerPoint only.
type AddPicture struct {
	Presentation Ref
	Slide        int
	Path         string
	Left, Top    float64
	Width        float64 // 0 means keep the image's own size
	Height       float64
}

func (c AddPicture) Application() Application { return PowerPoint }

func (c AddPicture) Validate() error {
	if err := c.Presentation.validate("presentation"); err != nil {
		return err
	}
	if err := requireIndex("slide", c.Slide); err != nil {
		return err
	}
	if c.Path == "" {
		return malformed("add picture requires a file path")
	}
	return nil
}

// AddShape draws an auto shape on a slide. Positions and sizes are in
// points. PowerPoint only.
type AddShape struct {
	Presentation  Ref
	Slide         int
	Shape         ShapeType
	Left, Top     float64
	Width, Height float64
}

func (c AddShape) Application() Application { return PowerPoint }

func (c AddShape) Validate() error {
	if err := c.Presentation.validate("presentation"); err != nil {
		return err
	}
	if err := requireIndex("slide", c.Slide); err != nil {
		return err
	}
	if c.Shape == "" {
		return malformed("add shape requires a shape type")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return malformed("shape dimensions must be positive")
	}
	return nil
}

// ApplyTransition sets the entry effect of a slide's transition. Speed is
// optional; when set it is capability-checked like any other field and the
// whole command fails if the table rejects it.
type ApplyTransition struct {
	Presentation Ref
	Slide        int
	Effect       TransitionEffect
	Speed        TransitionSpeed
}

func (c ApplyTransition) Application() Application { return PowerPoint }

func (c ApplyTransition) Validate() error {
	if err := c.Presentation.validate("presentation"); err != nil {
		return err
	}
	if err := requireIndex("slide", c.Slide); err != nil {
		return err
	}
	if c.Effect == "" {
		return malformed("transition requires an effect")
	}
	return nil
}

// SetCellValue writes a literal value into one cell. Excel only. Sheet
// selects the worksheet: ActiveRef is the active sheet, indexed and named
// refs resolve within the active workbook.
type SetCellValue struct {
	Sheet Ref
	Cell  string // A1-style single cell
	Value Value
}

func (c SetCellValue) Application() Application { return Excel }

func (c SetCellValue) Validate() error {
	if err := c.Sheet.validate("worksheet"); err != nil {
		return err
	}
	if c.Cell == "" {
		return malformed("set cell value requires a cell")
	}
	return c.Value.validate()
}

// SetFormula writes a formula string into a cell; evaluation is entirely
// Excel's business. Excel only.
type SetFormula struct {
	Sheet   Ref
	Cell    string
	Formula string
}

func (c SetFormula) Application() Application { return Excel }

func (c SetFormula) Validate() error {
	if err := c.Sheet.validate("worksheet"); err != nil {
		return err
	}
	if c.Cell == "" {
		return malformed("set formula requires a cell")
	}
	if c.Formula == "" {
		return malformed("set formula requires a formula")
	}
	return nil
}

// SetRange writes a rectangular block of values into an A1-style range.
// Rows must all have the same width. Excel only.
type SetRange struct {
	Sheet Ref
	Range string // e.g. "A1:B2"
	Rows  [][]Value
}

func (c SetRange) Application() Application { return Excel }

func (c SetRange) Validate() error {
	if err := c.Sheet.validate("worksheet"); err != nil {
		return err
	}
	if c.Range == "" {
		return malformed("set range requires a range")
	}
	if len(c.Rows) == 0 {
		return malformed("set range requires at least one row of values")
	}
	width := len(c.Rows[0])
	for i, row := range c.Rows {
		if len(row) == 0 {
			return malformed("set range row %d is empty", i+1)
		}
		if len(row) != width {
			return malformed("set range rows have uneven widths: row 1 has %d cells, row %d has %d", width, i+1, len(row))
		}
		for _, v := range row {
			if err := v.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateTextRange builds a character range inside a Word document. The
// document reference is mandatory: the dictionary's create range verb
// silently misbehaves without one, so a zero Document is malformed rather
// than defaulted. Start and End are 0-based character offsets.
type CreateTextRange struct {
	Document Ref
	Start    int
	End      int
}

func (c CreateTextRange) Application() Application { return Word }

func (c CreateTextRange) Validate() error {
	if err := c.Document.validate("document"); err != nil {
		return err
	}
	if c.Start < 0 || c.End < 0 {
		return malformed("range offsets must not be negative")
	}
	if c.End < c.Start {
		return malformed("range end %d precedes start %d", c.End, c.Start)
	}
	return nil
}

// FindReplace runs the host application's own find/replace over a Word
// document's text.
type FindReplace struct {
	Document   Ref
	Find       string
	Replace    string
	ReplaceAll bool
}

func (c FindReplace) Application() Application { return Word }

func (c FindReplace) Validate() error {
	if err := c.Document.validate("document"); err != nil {
		return err
	}
	if c.Find == "" {
		return malformed("find/replace requires search text")
	}
	return nil
}

// AddTable inserts a table. Rows and Columns are counts, at least 1 each.
// Target is the document (Word), presentation (PowerPoint, with Slide
// naming the slide), or worksheet (Excel, with Anchor naming the top-left
// cell). Capability tables decide which applications honor it.
type AddTable struct {
	App     Application
	Target  Ref
	Rows    int
	Columns int
	Slide   int    // PowerPoint: 1-based slide index
	Anchor  string // Excel: A1-style top-left cell
}

func (c AddTable) Application() Application { return c.App }

func (c AddTable) Validate() error {
	if err := validateApp(c.App); err != nil {
		return err
	}
	noun := documentNoun(c.App)
	if c.App == Excel {
		noun = "worksheet"
	}
	if err := c.Target.validate(noun); err != nil {
		return err
	}
	if err := requireIndex("row count", c.Rows); err != nil {
		return err
	}
	if err := requireIndex("column count", c.Columns); err != nil {
		return err
	}
	switch c.App {
	case PowerPoint:
		return requireIndex("slide", c.Slide)
	case Excel:
		if c.Anchor == "" {
			return malformed("table insertion on a worksheet requires an anchor cell")
		}
	}
	return nil
}

// SetHeaderFooter writes header or footer text. The traversal differs per
// application (Word sections, Excel page setup); the capability table
// decides which slots each application honors.
type SetHeaderFooter struct {
	App    Application
	Target Ref
	Kind   HeaderFooterKind
	Text   string
}

func (c SetHeaderFooter) Application() Application { return c.App }

func (c SetHeaderFooter) Validate() error {
	if err := validateApp(c.App); err != nil {
		return err
	}
	noun := documentNoun(c.App)
	if c.App == Excel {
		noun = "worksheet"
	}
	if err := c.Target.validate(noun); err != nil {
		return err
	}
	switch c.Kind {
	case Header, Footer:
		return nil
	case "":
		return malformed("header/footer change requires a kind")
	default:
		return malformed("unknown header/footer kind %q", c.Kind)
	}
}

func validateApp(app Application) error {
	if app == "" {
		return malformed("missing application")
	}
	if !app.Valid() {
		return malformed("unknown application %q", string(app))
	}
	return nil
}
