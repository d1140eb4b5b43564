package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator renders printable recovery kits. Interface kept small so handlers
// can be tested with a stub.
type Generator interface {
	GenerateRecoveryKit(data KitData) ([]byte, error)
}

type KitGenerator struct {
	appName string
}

type KitData struct {
	WalletAddress string
	Phrase        string
	GeneratedAt   time.Time
}

func NewKitGenerator(appName string) *KitGenerator {
	if appName == "" {
		appName = "Wallet Vault"
	}
	return &KitGenerator{appName: appName}
}

// GenerateRecoveryKit renders a one-page PDF with the wallet address and the
// phrase laid out as a numbered word grid, returned in memory — the phrase is
// never written to disk.
func (g *KitGenerator) GenerateRecoveryKit(data KitData) ([]byte, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("Recovery phrase kit", false)
	p.SetAuthor(g.appName, false)
	p.SetMargins(20, 20, 20)
	p.SetAutoPageBreak(true, 20)
	p.AddPage()

	p.SetFont("Helvetica", "B", 18)
	p.CellFormat(0, 10, "Recovery Phrase Kit", "", 1, "C", false, 0, "")

	p.SetFont("Helvetica", "", 11)
	p.CellFormat(0, 7, fmt.Sprintf("Generated %s", data.GeneratedAt.Format("2006-01-02 15:04 MST")), "", 1, "C", false, 0, "")
	g.hr(p)
	p.Ln(4)

	g.kvLine(p, "Wallet address", data.WalletAddress)
	p.Ln(4)

	p.SetFont("Helvetica", "B", 12)
	p.CellFormat(0, 8, "Recovery phrase", "", 1, "L", false, 0, "")
	p.SetFont("Courier", "", 12)

	// 3 columns x 4 rows for the 12 words
	words := strings.Fields(data.Phrase)
	const cols = 3
	colWidth := 170.0 / cols
	for i, w := range words {
		cell := fmt.Sprintf("%2d. %s", i+1, w)
		last := (i+1)%cols == 0 || i == len(words)-1
		ln := 0
		if last {
			ln = 1
		}
		p.CellFormat(colWidth, 9, cell, "1", ln, "L", false, 0, "")
	}

	p.Ln(6)
	g.hr(p)
	p.SetFont("Helvetica", "I", 10)
	p.MultiCell(0, 6,
		"Keep this page offline. Anyone holding this phrase can reset the password "+
			"for the wallet above. It will never be shown again by support staff.",
		"", "L", false)

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("render recovery kit: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *KitGenerator) hr(p *gofpdf.Fpdf) {
	x, y := p.GetXY()
	p.SetDrawColor(120, 120, 120)
	p.Line(20, y, 190, y)
	p.SetXY(x, y+2)
}

func (g *KitGenerator) kvLine(p *gofpdf.Fpdf, key, value string) {
	p.SetFont("Helvetica", "B", 11)
	p.CellFormat(45, 7, key+":", "", 0, "L", false, 0, "")
	p.SetFont("Courier", "", 11)
	p.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}
