package handlers

import (
	"encoding/csv"
	"io"
	"net/http"

	"github.com/brickmate/leadbook/internal/infra/http/middleware"
	"github.com/brickmate/leadbook/internal/usecase"
)

const maxImportSize = 10 << 20 // 10MB

type ImportHandler struct {
	Importer *usecase.ImportLeadsUseCase
}

func NewImportHandler(importer *usecase.ImportLeadsUseCase) *ImportHandler {
	return &ImportHandler{Importer: importer}
}

// Handle accepts a multipart CSV upload, decodes it header-driven into named
// string fields and hands the rows to the import usecase. Quoting and
// escaping are the CSV decoder's problem; the usecase only ever sees
// map[string]string rows.
func (h *ImportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "expected a multipart upload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "missing 'file' field")
		return
	}
	defer file.Close()

	rows, err := decodeCSV(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_csv", "could not parse the CSV file")
		return
	}

	result, err := h.Importer.Execute(r.Context(), user.ID, rows)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "import failed")
		return
	}

	for i := 0; i < result.Imported; i++ {
		middleware.RecordLeadCreated("import")
	}
	middleware.RecordImportSkipped("no_address", result.SkippedNoAddress)
	middleware.RecordImportSkipped("duplicate_address", result.SkippedDuplicates)

	respondJSON(w, http.StatusOK, result)
}

func decodeCSV(src io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		empty := true
		for i, name := range header {
			if i >= len(record) {
				break
			}
			row[name] = record[i]
			if record[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
