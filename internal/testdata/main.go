package testdata

import (
	"git.lost.host/meutraa/simai/internal/chart"
	"git.lost.host/meutraa/simai/internal/parser"
)

func GetDocument() *chart.Document {
	p := parser.DefaultParser{}
	return p.ParseString(data)
}

const data = `&title=Test Song Title
&artist=Test Artist Name
&des=Chart Designer
&first=1.25
&lv_4=13+
&inote_4=
|| opening comment
(120)
1,2h[4:1],E1/3,
{8}
<HS*2.5>
A1b-2[8:1]$/Cfx,4` + "`5`" + `6,7,
8
`
