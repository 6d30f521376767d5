package pdf

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"invoice_studio/internal/domain/entities"
	"invoice_studio/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

const (
	defaultCurrencyLabel = "AED"

	headerBannerPath = "images/header.png"
	footerBannerPath = "images/footer.png"
)

// Assembler turns an invoice snapshot into the downloadable PDF: header
// banner, metadata block, wrapped comments, itemized table with embedded
// thumbnails, computed total box and footer banner.
//
// Pagination policy: a row that would cross the bottom margin starts a
// new page; continuation pages repeat no table header; the total box and
// footer follow the last row and each moves to a fresh page only when it
// would not fit.
type Assembler struct {
	resolver interfaces.IImageResolver
	currency string
}

func NewAssembler(resolver interfaces.IImageResolver) *Assembler {
	currency := os.Getenv("CURRENCY_LABEL")
	if currency == "" {
		currency = defaultCurrencyLabel
	}
	return &Assembler{resolver: resolver, currency: currency}
}

// FileName derives the download name from the invoice number.
func FileName(inv entities.Invoice) string {
	return fmt.Sprintf("invoice_%s.pdf", inv.InvoiceNumber)
}

// FormatDate renders an ISO date as DD-MM-YYYY; anything unparseable is
// rendered verbatim.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(iso))
	if err != nil {
		return iso
	}
	return t.Format("02-01-2006")
}

func (a *Assembler) Build(ctx context.Context, inv entities.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	_, pageH := doc.GetPageSize()

	a.placeBanner(ctx, doc, "header-banner", headerBannerPath,
		headerBannerX, headerBannerY, headerBannerW, headerBannerH)

	doc.SetFont("Arial", "", bodyFontSize)
	doc.SetTextColor(0, 0, 0)
	doc.Text(metaX, metaY, "Customer Name: "+inv.CustomerName)
	doc.Text(metaX, metaY+metaLineStep, "Invoice Number: "+inv.InvoiceNumber)
	doc.Text(metaX, metaY+2*metaLineStep, "Date: "+FormatDate(inv.Date))

	y := metaY + 3*metaLineStep
	y = a.writeComments(doc, pageH, inv.Comments, y)

	y = a.drawTableHeader(doc, pageH, y)
	doc.SetFont("Arial", "", tableFontSize)
	for i, it := range inv.Items {
		y = a.drawRow(doc, pageH, y, i, it, inv.FullAmount)
	}

	y = a.drawTotalBox(doc, pageH, y, inv)

	footY := y + footerBannerGap
	if footY+footerBannerH > pageH-pageMarginBottom {
		doc.AddPage()
		footY = pageMarginTop
	}
	a.placeBanner(ctx, doc, "footer-banner", footerBannerPath,
		pageMarginX, footY, footerBannerW, footerBannerH)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("assemble invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writeComments word-wraps the free-text comment to the printable width
// and renders it in the attention color, breaking to a new page when a
// line would cross the bottom margin. Returns the next free y.
func (a *Assembler) writeComments(doc *gofpdf.Fpdf, pageH float64, comments string, y float64) float64 {
	comments = strings.TrimSpace(comments)
	if comments == "" {
		return y
	}
	doc.SetTextColor(200, 0, 0)
	width := 210.0 - 2*metaX
	for _, line := range doc.SplitLines([]byte(comments), width) {
		if y+commentLineH > pageH-pageMarginBottom {
			doc.AddPage()
			y = pageMarginTop + commentLineH
		}
		doc.Text(metaX, y, string(line))
		y += commentLineH
	}
	doc.SetTextColor(0, 0, 0)
	return y + 4
}

func (a *Assembler) drawTableHeader(doc *gofpdf.Fpdf, pageH, y float64) float64 {
	if y+tableHeaderH > pageH-pageMarginBottom {
		doc.AddPage()
		y = pageMarginTop
	}
	doc.SetFont("Arial", "B", tableFontSize)
	doc.SetFillColor(0, 100, 0)
	doc.SetTextColor(255, 255, 255)
	doc.SetXY(pageMarginX, y)
	for _, col := range []struct {
		w     float64
		title string
	}{
		{colNoW, "No"},
		{colPicW, "Image"},
		{colDescW, "Item Name & Description"},
		{colQtyW, "Quantity"},
		{colAmtW, "Amount"},
	} {
		doc.CellFormat(col.w, tableHeaderH, col.title, "1", 0, "CM", true, 0, "")
	}
	doc.SetTextColor(0, 0, 0)
	return y + tableHeaderH
}

// drawRow places one whole table row, breaking to a new page first when
// the row would cross the bottom margin. Returns the next free y.
func (a *Assembler) drawRow(doc *gofpdf.Fpdf, pageH, y float64, index int, it entities.LineItem, fullAmount bool) float64 {
	descLines := doc.SplitLines([]byte(it.Description), colDescW-2*cellPadding)
	rowH := rowMinHeight
	if h := float64(len(descLines))*rowLineH + 2*cellPadding; h > rowH {
		rowH = h
	}

	if y+rowH > pageH-pageMarginBottom {
		doc.AddPage()
		y = pageMarginTop
	}

	x := pageMarginX
	doc.SetXY(x, y)
	doc.CellFormat(colNoW, rowH, strconv.Itoa(index+1), "1", 0, "CM", false, 0, "")
	x += colNoW

	doc.CellFormat(colPicW, rowH, "", "1", 0, "CM", false, 0, "")
	a.drawPicture(doc, x, y, rowH, it.Picture)
	x += colPicW

	a.drawWrappedCell(doc, x, y, colDescW, rowH, descLines)
	x += colDescW

	doc.SetXY(x, y)
	doc.CellFormat(colQtyW, rowH, it.Quantity, "1", 0, "CM", false, 0, "")

	doc.CellFormat(colAmtW, rowH, a.amountCell(it, fullAmount), "1", 0, "CM", false, 0, "")
	return y + rowH
}

// amountCell is blank in full-amount mode; otherwise the parsed amount
// with the currency label, an empty amount showing as zero.
func (a *Assembler) amountCell(it entities.LineItem, fullAmount bool) string {
	if fullAmount {
		return ""
	}
	return it.AmountOrZero().String() + " " + a.currency
}

func (a *Assembler) drawPicture(doc *gofpdf.Fpdf, x, y, rowH float64, bm *entities.Bitmap) {
	if bm == nil || len(bm.PNG) == 0 {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	imgName := "pic-" + bm.Name
	doc.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(bm.PNG))

	naturalW := float64(bm.Width) * mmPerPixel
	naturalH := float64(bm.Height) * mmPerPixel
	w, h := fitBox(naturalW, naturalH, colPicW-2*cellPadding, rowH-2*cellPadding)
	if w <= 0 || h <= 0 {
		return
	}
	doc.ImageOptions(imgName, x+(colPicW-w)/2, y+(rowH-h)/2, w, h, false, opts, 0, "")
}

func (a *Assembler) drawWrappedCell(doc *gofpdf.Fpdf, x, y, w, h float64, lines [][]byte) {
	doc.Rect(x, y, w, h, "D")
	if len(lines) == 0 {
		return
	}
	textH := float64(len(lines)) * rowLineH
	baseline := y + (h-textH)/2 + rowLineH - 1.5
	for i, line := range lines {
		s := string(line)
		tw := doc.GetStringWidth(s)
		doc.Text(x+(w-tw)/2, baseline+float64(i)*rowLineH, s)
	}
}

func (a *Assembler) drawTotalBox(doc *gofpdf.Fpdf, pageH, y float64, inv entities.Invoice) float64 {
	boxY := y + totalBoxGap
	if boxY+totalBoxH > pageH-pageMarginBottom {
		doc.AddPage()
		boxY = pageMarginTop
	}

	doc.SetFont("Arial", "", tableFontSize)
	doc.SetFillColor(0, 100, 0)
	doc.SetTextColor(255, 255, 255)
	doc.SetXY(metaX, boxY)
	doc.CellFormat(totalBoxW, totalBoxH, a.TotalLabel(inv), "", 0, "CM", true, 0, "")
	doc.SetTextColor(0, 0, 0)
	return boxY + totalBoxH
}

// TotalLabel is the text inside the filled total box.
func (a *Assembler) TotalLabel(inv entities.Invoice) string {
	return fmt.Sprintf("Total Amount: %s %s", inv.ComputedTotal().String(), a.currency)
}

// placeBanner embeds a fixed decorative image; a banner that fails to
// resolve is logged and skipped, never fatal to the document.
func (a *Assembler) placeBanner(ctx context.Context, doc *gofpdf.Fpdf, name, path string, x, y, w, h float64) {
	bm, err := a.resolver.Resolve(ctx, name, path)
	if err != nil || bm == nil || len(bm.PNG) == 0 {
		log.Printf("[pdf][banner] resolve failed name=%s path=%s err=%v", name, path, err)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(bm.PNG))
	doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}
