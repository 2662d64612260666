package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gymops/admin-console/internal/config"
	"gymops/admin-console/internal/progress"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ErrExportFailed is the generic export error shown to the operator; the
// on-screen report stays intact whatever went wrong underneath.
var ErrExportFailed = errors.New("no se pudo exportar el informe")

// PDFExporter rasterizes a progress report into a single auto-scaled A4
// page through a headless browser.
type PDFExporter struct {
	cfg     config.ExportConfig
	archive Archiver // nil when report archiving is not configured
}

func NewPDFExporter(cfg config.ExportConfig, archive Archiver) *PDFExporter {
	return &PDFExporter{cfg: cfg, archive: archive}
}

// Export renders the report, prints it to PDF and writes the file into the
// configured output directory. It returns the written file path.
func (e *PDFExporter) Export(ctx context.Context, reporte *progress.Reporte) (string, error) {
	html, err := renderHTML(reporte)
	if err != nil {
		log.Errorf("export: %s", err)
		return "", ErrExportFailed
	}

	pdf, err := e.printToPDF(ctx, html)
	if err != nil {
		log.Errorf("export: print to pdf: %s", err)
		return "", ErrExportFailed
	}

	fileName := reportFileName(reporte.Cliente.NombreCompleto(), reporte.GeneradoEl)
	filePath := filepath.Join(e.cfg.OutputDir, fileName)
	if err := os.WriteFile(filePath, pdf, 0o644); err != nil {
		log.Errorf("export: write %s: %s", filePath, err)
		return "", ErrExportFailed
	}

	// archiving is best-effort: a failed upload never fails the export
	if e.archive != nil {
		objectKey := fmt.Sprintf("reports/%d/%s-%s", reporte.Cliente.ID, uuid.NewString(), fileName)
		if err := e.archive.Upload(ctx, objectKey, pdf, "application/pdf"); err != nil {
			log.Errorf("export: archive %s: %s", objectKey, err)
		} else {
			log.Infof("report archived as %s", objectKey)
		}
	}

	return filePath, nil
}

// printToPDF loads the HTML into a headless browser tab and prints it.
func (e *PDFExporter) printToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if e.cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.cfg.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// A4 portrait, content scaled to fit one page width
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(false).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// reportFileName builds progreso_<cliente>_<fecha>.pdf with whitespace
// collapsed to underscores.
func reportFileName(clienteNombre string, generadoEl time.Time) string {
	nombre := strings.Join(strings.Fields(clienteNombre), "_")
	return fmt.Sprintf("progreso_%s_%s.pdf", nombre, generadoEl.Format("2006-01-02"))
}
