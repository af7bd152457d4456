package simulated

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

// DefaultTab is the worksheet written when an update names none.
const DefaultTab = "Sheet1"

// Sheets simulates spreadsheet updates. With a mirror directory configured,
// each update is also written to a local workbook so the data can be
// inspected.
type Sheets struct {
	dir string
	now func() time.Time
	mu  sync.Mutex
}

// NewSheets returns a Sheets adapter. An empty dir disables the mirror.
func NewSheets(dir string, now func() time.Time) *Sheets {
	if now == nil {
		now = time.Now
	}
	return &Sheets{dir: dir, now: now}
}

func (s *Sheets) Update(_ context.Context, in domain.SheetUpdate) (*domain.SheetUpdateResult, error) {
	tab := in.Tab
	if tab == "" {
		tab = DefaultTab
	}

	if s.dir != "" {
		if err := s.mirror(in.SheetID, tab, in.Rows); err != nil {
			return nil, fmt.Errorf("mirror sheet %q: %w", in.SheetID, err)
		}
	}

	return &domain.SheetUpdateResult{
		SheetID:     in.SheetID,
		Tab:         tab,
		RowsUpdated: len(in.Rows),
		Timestamp:   s.now(),
	}, nil
}

// MirrorPath returns the workbook path used for sheetID.
func (s *Sheets) MirrorPath(sheetID string) string {
	return filepath.Join(s.dir, fileName(sheetID)+".xlsx")
}

func (s *Sheets) mirror(sheetID, tab string, rows [][]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	path := s.MirrorPath(sheetID)
	f, err := excelize.OpenFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		f = excelize.NewFile()
	} else if err != nil {
		return err
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(tab)
	if err != nil {
		return err
	}
	if idx == -1 {
		if idx, err = f.NewSheet(tab); err != nil {
			return err
		}
	}
	f.SetActiveSheet(idx)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(tab, cell, &values); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// fileName reduces a sheet id to a safe file name.
func fileName(sheetID string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, sheetID)
	if clean == "" {
		return "planilha"
	}
	return clean
}
