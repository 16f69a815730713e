package analysis

const (
	DemoPath  = "/analysis/demo"
	RootPath  = "/"
	demoTitle = "Demo Analysis"
	mainTitle = "Wallet Health Analysis"
)

// Route is what the router hands the page: the request path and the optional
// address path parameter. A nil Address means the parameter was absent.
type Route struct {
	Path    string
	Address *string
}

// Navigator performs client-side navigation. Implementations are
// fire-and-forget.
type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

type View struct {
	Title  string         `json:"title"`
	IsDemo bool           `json:"is_demo"`
	Chain  string         `json:"chain"`
	Gauge  Gauge          `json:"gauge"`
	Wallet WalletAnalysis `json:"wallet"`
}

// Resolve builds the analysis page for a route. The demo path always shows
// DemoAddress; any other path shows the address parameter verbatim, or an
// empty string when it is absent.
func Resolve(rt Route) View {
	isDemo := rt.Path == DemoPath

	var address string
	switch {
	case isDemo:
		address = DemoAddress
	case rt.Address != nil:
		address = *rt.Address
	}

	title := mainTitle
	if isDemo {
		title = demoTitle
	}

	wallet := Build(address)
	return View{
		Title:  title,
		IsDemo: isDemo,
		Chain:  string(DetectChain(address)),
		Gauge:  NewGauge(wallet.Score),
		Wallet: wallet,
	}
}

// ChangeWallet sends the user back to the address entry page.
func (v View) ChangeWallet(nav Navigator) {
	nav.Navigate(RootPath)
}
