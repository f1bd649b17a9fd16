package pagination

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// Row is one record of the dataset.
type Row []string

// Hyper is a page plus the links a client needs to move around.
type Hyper struct {
	PageSize   int   `json:"page_size"`
	Page       int   `json:"page"`
	Data       []Row `json:"data"`
	NextPage   *int  `json:"next_page"`
	PrevPage   *int  `json:"prev_page"`
	TotalPages int   `json:"total_pages"`
}

// HyperIndex is a page addressed by start index rather than page number.
// It stays consistent when rows are deleted between two requests.
type HyperIndex struct {
	Index     int   `json:"index"`
	NextIndex int   `json:"next_index"`
	PageSize  int   `json:"page_size"`
	Data      []Row `json:"data"`
}

/*
Server paginates a dataset.

The dataset is read once, on first use: either from a CSV file (the header
row is dropped) or from rows handed to NewServerFromRows.

Two views exist:
- the positional dataset used by GetPage and GetHyper, which never changes
- the indexed dataset used by GetHyperIndex, from which Delete removes rows
*/
type Server struct {
	dataFile string

	once    sync.Once
	loadErr error
	dataset []Row

	mu      sync.RWMutex
	indexed map[int]Row
}

// NewServer returns a Server reading the CSV file at dataFile.
func NewServer(dataFile string) *Server {
	return &Server{dataFile: dataFile}
}

// NewServerFromRows returns a Server over rows already in memory. rows has no header.
func NewServerFromRows(rows []Row) *Server {
	s := &Server{}
	s.once.Do(func() { s.setDataset(rows) })
	return s
}

func (s *Server) setDataset(rows []Row) {
	s.dataset = rows
	s.indexed = make(map[int]Row, len(rows))
	for i, r := range rows {
		s.indexed[i] = r
	}
}

// Dataset returns every row, loading the file on first call.
func (s *Server) Dataset() ([]Row, error) {
	s.once.Do(func() {
		rows, err := readCSV(s.dataFile)
		if err != nil {
			s.loadErr = err
			return
		}
		s.setDataset(rows)
	})
	return s.dataset, s.loadErr
}

func readCSV(path string) ([]Row, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Row(rec))
	}
	return rows, nil
}

// GetPage returns the rows of a 1-indexed page. A page past the end is empty, not an error.
func (s *Server) GetPage(page, pageSize int) ([]Row, error) {
	start, end, err := IndexRange(page, pageSize)
	if err != nil {
		return nil, err
	}
	data, err := s.Dataset()
	if err != nil {
		return nil, err
	}
	if start >= len(data) {
		return []Row{}, nil
	}
	if end > len(data) {
		end = len(data)
	}
	return data[start:end], nil
}

// GetHyper returns a page with its navigation links.
// NextPage is nil on the last page and PrevPage is nil on the first.
// PageSize is the number of rows actually returned.
func (s *Server) GetHyper(page, pageSize int) (Hyper, error) {
	rows, err := s.GetPage(page, pageSize)
	if err != nil {
		return Hyper{}, err
	}
	start, end, _ := IndexRange(page, pageSize)
	total := len(s.dataset)

	h := Hyper{
		PageSize:   len(rows),
		Page:       page,
		Data:       rows,
		TotalPages: (total + pageSize - 1) / pageSize,
	}
	if end < total {
		next := page + 1
		h.NextPage = &next
	}
	if start > 0 {
		prev := page - 1
		h.PrevPage = &prev
	}
	return h, nil
}

/*
GetHyperIndex returns up to pageSize surviving rows starting at index.

Deleted rows are skipped, so a client that keeps following NextIndex sees
every remaining row exactly once even if rows disappear between requests.
NextIndex is the first index not examined.
*/
func (s *Server) GetHyperIndex(index, pageSize int) (HyperIndex, error) {
	if pageSize < 1 {
		return HyperIndex{}, fmt.Errorf("%w: page_size=%d", ErrInvalidPage, pageSize)
	}
	data, err := s.Dataset()
	if err != nil {
		return HyperIndex{}, err
	}
	if index < 0 || index >= len(data) {
		return HyperIndex{}, fmt.Errorf("%w: index=%d size=%d", ErrInvalidIndex, index, len(data))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]Row, 0, pageSize)
	i := index
	for ; i < len(data) && len(rows) < pageSize; i++ {
		if r, ok := s.indexed[i]; ok {
			rows = append(rows, r)
		}
	}

	return HyperIndex{
		Index:     index,
		NextIndex: i,
		PageSize:  len(rows),
		Data:      rows,
	}, nil
}

// Delete removes the row at index from the indexed dataset.
// It reports whether a row was removed.
func (s *Server) Delete(index int) bool {
	if _, err := s.Dataset(); err != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.indexed[index]; !ok {
		return false
	}
	delete(s.indexed, index)
	return true
}
