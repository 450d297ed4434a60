package templates

// Title is the document title of the dashboard.
const Title = "가비아 클라우드 | 서비스 지표 대시보드 | Ted(신태선)-클라우드기획팀"

// NoResults replaces a table or plot when the filter leaves nothing to show.
const NoResults = "필터 결과가 없습니다."

type Page struct {
	Title   string
	Sidebar Sidebar
	Panels  Panels
}

// Sidebar holds the filter controls. OOB marks an out-of-band swap.
type Sidebar struct {
	OOB      bool
	CostMin  int64
	CostMax  int64
	CostStep int64
	CostFrom int64
	CostTo   int64
	Display  CostDisplay
	Windows  []Option
}

// CostDisplay shows the selected cost range next to the slider.
type CostDisplay struct {
	OOB  bool
	From string
	To   string
}

type Option struct {
	Value   string
	Label   string
	Checked bool
}

// Panels are the views recomputed on every event.
type Panels struct {
	OOB          bool
	Display      CostDisplay
	KPIs         KPIs
	Table        Table
	Scatter      PlotPanel
	Distribution PlotPanel
}

type KPIs struct {
	TotalRows       string
	AvgOverageRatio string
	AvgMonthlyCost  string
}

type Table struct {
	Empty bool
	Rows  []TableRow
	Info  string
}

type TableRow struct {
	MonthlyCost   string
	OverageCost   string
	TrafficWindow string
	Segment       string
	PromoApplied  string
	Weekday       string
	OverageRatio  string
}

// PlotPanel is one chart card: its image URL and the selector options.
type PlotPanel struct {
	Empty    bool
	ImageURL string
	Options  []Option
}

// Fragments is the body of an event response.
type Fragments struct {
	Panels  Panels
	Sidebar *Sidebar
}
