package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"pqcbench/internal/bench"
	"pqcbench/internal/mechanism"
)

// Header is the fixed CSV column order. Changing it breaks downstream
// consumers of the results file.
var Header = []string{
	"Algorithm",
	"Type",
	"Public Key (bytes)",
	"Secret Key (bytes)",
	"Ciphertext (bytes)",
	"Signature (bytes)",
	"Keygen (ms)",
	"Encaps/Sign (ms)",
	"Decaps/Verify (ms)",
}

// NotApplicable fills the size column that does not apply to a record's
// category: Signature (bytes) for KEMs, Ciphertext (bytes) for signatures.
const NotApplicable = "N/A"

// WriteCSV serializes records to dir/file, creating dir if absent and
// overwriting any existing file. With no records nothing is written and
// the empty path is returned; an empty run is not an error.
func WriteCSV(dir, file string, records []bench.Record) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, file)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create results file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(row(rec)); err != nil {
			return "", fmt.Errorf("failed to write CSV row for %s: %w", rec.Algorithm, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return path, nil
}

func row(rec bench.Record) []string {
	ciphertext := NotApplicable
	signature := NotApplicable
	if rec.Category == mechanism.CategoryKEM {
		ciphertext = strconv.Itoa(rec.Details.CiphertextBytes)
	} else {
		signature = strconv.Itoa(rec.Details.SignatureBytes)
	}

	return []string{
		rec.Algorithm,
		string(rec.Category),
		strconv.Itoa(rec.Details.PublicKeyBytes),
		strconv.Itoa(rec.Details.SecretKeyBytes),
		ciphertext,
		signature,
		strconv.FormatFloat(rec.KeygenMs, 'f', 6, 64),
		strconv.FormatFloat(rec.EncapsSignMs, 'f', 6, 64),
		strconv.FormatFloat(rec.DecapsVerifyMs, 'f', 6, 64),
	}
}
