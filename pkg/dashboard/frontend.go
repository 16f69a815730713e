package dashboard

import (
	"html/template"
	"net/url"

	"github.com/wallet-health/pkg/analysis"
	"github.com/wallet-health/pkg/db"
)

type homePage struct {
	DemoPath string
	Recent   []db.Lookup
}

type analysisPage struct {
	View analysis.View
	Path string
}

var glyphs = map[string]string{
	"shield":      "🛡️",
	"activity":    "📈",
	"wallet":      "👛",
	"bar-chart-3": "📊",
}

func glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return "•"
}

func parseTemplates() *template.Template {
	funcs := template.FuncMap{
		"glyph":       glyph,
		"impactClass": analysis.ImpactClass,
		"abbrev":      analysis.Abbrev,
		"pathEscape":  url.PathEscape,
	}
	t := template.Must(template.New("layout").Funcs(funcs).Parse(layoutHTML))
	template.Must(t.New("home").Parse(homeHTML))
	template.Must(t.New("analysis").Parse(analysisHTML))
	template.Must(t.New("gauge").Parse(gaugeHTML))
	template.Must(t.New("metrics").Parse(metricsHTML))
	template.Must(t.New("recommendations").Parse(recommendationsHTML))
	return t
}

const layoutHTML = `{{define "head"}}<!DOCTYPE html>
<html lang="en"><head>
<meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.}}</title>
<link href="https://fonts.googleapis.com/css2?family=JetBrains+Mono:wght@400;500;600;700&family=Space+Grotesk:wght@400;500;600;700&display=swap" rel="stylesheet">
<style>
:root{--bg:#08090d;--sf:#1A1A2E;--sf2:#161923;--bd:#252a3a;--tx:#fff;--tx2:#B4B4D9;--tx3:#5a6278;--solana-purple:#9945FF;--solana-green:#14F195;--solana-blue:#00C2FF;--warn:#f59e0b;--danger:#ef4444}
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:'Space Grotesk',sans-serif;background:var(--bg);color:var(--tx);min-height:100vh}
main{max-width:1280px;margin:0 auto;padding:48px 24px}
h1,h2{font-weight:600;text-shadow:0 0 12px rgba(153,69,255,.5)}
h1{font-size:30px;margin-bottom:16px}h2{font-size:24px;margin-bottom:32px}
.sec{margin-bottom:64px}
.addr-box{background:var(--sf);padding:12px;border-radius:8px;margin-bottom:16px}
.addr-row{display:flex;justify-content:space-between;align-items:center;margin-bottom:8px}
.addr-row span{font-size:14px;color:var(--tx2)}
.addr{font-family:'JetBrains Mono',monospace;font-size:12px;word-break:break-all}
.chain{display:inline-block;font-size:9px;padding:2px 8px;border-radius:5px;margin-left:8px;border:1px solid var(--bd);color:var(--tx2)}
.btn{font-family:inherit;font-size:12px;background:0;border:none;color:var(--solana-purple);cursor:pointer;padding:4px 8px}
.btn:hover{color:#fff}
.gauge{display:flex;flex-direction:column;align-items:center}
.gauge svg{width:220px;height:220px}
.gauge .tier{font-size:14px;color:var(--tx2);margin-top:8px}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(320px,1fr));gap:24px;align-items:start}
.card{background:var(--sf);border:1px solid var(--bd);border-radius:12px;padding:20px}
.card-h{display:flex;justify-content:space-between;align-items:center;margin-bottom:8px}
.card-h .nm{font-size:16px;font-weight:600}
.score{font-weight:700;font-size:18px}
.desc{font-size:13px;color:var(--tx2);margin-bottom:8px}
details{font-size:12px;color:var(--tx2);line-height:1.6}
summary{cursor:pointer;color:var(--solana-purple)}
.sc{font-weight:700;font-size:10px;padding:3px 10px;border-radius:6px;text-transform:uppercase}
.sc-h{background:rgba(239,68,68,.15);color:#f87171;border:1px solid rgba(239,68,68,.2)}
.sc-m{background:rgba(245,158,11,.15);color:#fbbf24;border:1px solid rgba(245,158,11,.2)}
.sc-l{background:rgba(90,98,120,.15);color:#9aa3b8;border:1px solid rgba(90,98,120,.2)}
.solana-purple{color:var(--solana-purple)}.solana-green{color:var(--solana-green)}.solana-blue{color:var(--solana-blue)}.warn{color:var(--warn)}.danger{color:var(--danger)}
form.find{display:flex;gap:8px;margin:24px 0}
form.find input{flex:1;background:var(--sf);border:1px solid var(--bd);color:var(--tx);padding:12px;border-radius:8px;font-family:'JetBrains Mono',monospace}
form.find button{background:var(--solana-purple);color:#fff;border:none;border-radius:8px;padding:0 20px;cursor:pointer}
ul.recent{list-style:none}ul.recent li{padding:6px 0;font-size:12px}
a{color:var(--solana-green)}
</style>
</head><body><main>{{end}}
{{define "foot"}}</main></body></html>
{{end}}`

const homeHTML = `{{template "head" "Wallet Health"}}
<h1>Wallet Health</h1>
<form class="find" method="post" action="/analyze">
  <input name="address" placeholder="Wallet address (base58 or 0x...)" autocomplete="off">
  <button type="submit">Analyze</button>
</form>
<p><a href="{{.DemoPath}}">Try the demo analysis</a></p>
{{if .Recent}}
<div class="sec" style="margin-top:32px">
  <h2>Recent Lookups</h2>
  <ul class="recent">
  {{range .Recent}}<li><a href="{{if .IsDemo}}/analysis/demo{{else}}/analysis/{{pathEscape .Address}}{{end}}">{{abbrev .Address}}</a><span class="chain">{{.Chain}}</span></li>
  {{end}}</ul>
</div>
{{end}}
{{template "foot"}}`

const analysisHTML = `{{template "head" .View.Title}}
<div class="sec" style="margin-bottom:48px">
  <h1>{{.View.Title}}</h1>
  <div class="addr-box">
    <div class="addr-row">
      <span>Address</span>
      <form method="post" action="/change-wallet">
        <input type="hidden" name="from" value="{{.Path}}">
        <button class="btn" type="submit">Change Wallet</button>
      </form>
    </div>
    <div class="addr">{{.View.Wallet.Address}}{{if .View.Wallet.Address}}<span class="chain">{{.View.Chain}}</span>{{end}}</div>
  </div>
</div>
<div class="sec">{{template "gauge" .View.Gauge}}</div>
<div class="sec">
  <h2>Metrics Breakdown</h2>
  {{template "metrics" .View.Wallet.Metrics}}
</div>
<div class="sec">{{template "recommendations" .View.Wallet.Recommendations}}</div>
{{template "foot"}}`

const gaugeHTML = `<div class="gauge" data-score="{{.Score}}">
  <svg viewBox="0 0 100 100">
    <circle cx="50" cy="50" r="45" fill="none" stroke="#252a3a" stroke-width="8"/>
    <circle cx="50" cy="50" r="45" fill="none" stroke="var(--{{.Accent}})" stroke-width="8" stroke-linecap="round" stroke-dasharray="{{.DashArray}}" transform="rotate(-90 50 50)"/>
    <text x="50" y="55" text-anchor="middle" font-size="22" font-weight="700" fill="#fff">{{.Score}}</text>
  </svg>
  <div class="tier {{.Accent}}">{{.Tier}}</div>
</div>`

const metricsHTML = `<div class="grid">
{{range .}}<div class="card" id="metric-{{.ID}}">
  <div class="card-h">
    <div class="nm"><span class="{{.Icon.Accent}}">{{glyph .Icon.Glyph}}</span> {{.Name}}</div>
    <div class="score">{{.Score}}</div>
  </div>
  <p class="desc">{{.Description}}</p>
  <details><summary>Details</summary><p>{{.Details}}</p></details>
</div>
{{end}}</div>`

const recommendationsHTML = `<h2>Recommendations</h2>
<div class="grid">
{{range .}}<div class="card" id="rec-{{.ID}}">
  <div class="card-h">
    <div class="nm">{{.Title}}</div>
    <span class="sc {{impactClass .Impact}}">{{.Impact}} impact</span>
  </div>
  <p class="desc">{{.Description}}</p>
  <details><summary>Details</summary><p>{{.Details}}</p></details>
</div>
{{end}}</div>`
