package queries

import (
	"encoding/json"

	"sdi-showcase/internal/pkg/errs"
)

// exportJSON uses the persisted field layout so a copied record can be pasted back verbatim.
func exportJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errs.Wrap(err, "encode export")
	}
	return b, nil
}
