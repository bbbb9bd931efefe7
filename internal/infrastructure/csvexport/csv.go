// Package csvexport escribe catálogo y movimientos en CSV apto para Excel en francés:
// separador ';', BOM UTF-8 y fin de línea CRLF.
package csvexport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jhoicas/stock-manager/internal/application/report"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/inventory"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
	utf8BOM       = "\uFEFF"
)

var (
	movementHeader = []string{"Date", "Produit", "Type", "Quantité", "Commentaire"}
	productHeader  = []string{"Nom", "Catégorie", "Quantité", "Unité", "Seuil min.", "Prix unit.", "Valeur (€)", "Statut"}
)

var _ report.TableWriter = (*Writer)(nil)

// Writer implementa report.TableWriter.
type Writer struct{}

// NewWriter construye el writer.
func NewWriter() *Writer { return &Writer{} }

// WriteMovements una fila por movimiento, en el orden recibido.
func (Writer) WriteMovements(w io.Writer, movements []*entity.Movement) error {
	s, err := newStreamer(w)
	if err != nil {
		return err
	}
	if err := s.writeRow(movementHeader); err != nil {
		return err
	}
	for _, m := range movements {
		comment := ""
		if m.Comment != nil {
			comment = *m.Comment
		}
		if err := s.writeRow([]string{
			entity.FormatDate(m.Date),
			m.ProductName,
			string(m.Type),
			m.Quantity.String(),
			comment,
		}); err != nil {
			return err
		}
	}
	return s.Close()
}

// WriteProducts una fila por producto con su valor de stock y estado.
func (Writer) WriteProducts(w io.Writer, products []*entity.Product) error {
	s, err := newStreamer(w)
	if err != nil {
		return err
	}
	if err := s.writeRow(productHeader); err != nil {
		return err
	}
	for _, p := range products {
		if err := s.writeRow([]string{
			p.Name,
			string(p.Category),
			p.Quantity.String(),
			p.Unit,
			p.MinThreshold.String(),
			p.PricePerUnit.StringFixed(2),
			p.StockValue().StringFixed(2),
			inventory.ClassifyProduct(p).Status.String(),
		}); err != nil {
			return err
		}
	}
	return s.Close()
}

type streamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

func newStreamer(w io.Writer) (*streamer, error) {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	if _, err := buf.WriteString(utf8BOM); err != nil {
		return nil, err
	}
	writer := csv.NewWriter(buf)
	writer.Comma = ';'
	writer.UseCRLF = true
	return &streamer{buf: buf, csv: writer, flushEvery: csvFlushEvery}, nil
}

func (s *streamer) writeRow(row []string) error {
	if s == nil || s.csv == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.Flush()
	}
	return nil
}

func (s *streamer) Flush() error {
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

func (s *streamer) Close() error {
	return s.Flush()
}
