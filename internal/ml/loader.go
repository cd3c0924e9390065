package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadClassifier reads a JSON-exported classifier from path.
func LoadClassifier(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read classifier: %w", err)
	}

	var c Classifier
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode classifier: %w", err)
	}
	if c.NFeatures <= 0 || len(c.Trees) == 0 {
		return nil, fmt.Errorf("classifier %s: missing trees or feature count", path)
	}
	for i := range c.Trees {
		if len(c.Trees[i].Nodes) == 0 {
			return nil, fmt.Errorf("classifier %s: tree %d has no nodes", path, i)
		}
	}
	return &c, nil
}

// LoadEncoder reads the companion label encoder from path. A missing encoder
// is not fatal to the application: callers keep a nil encoder and label
// resolution falls back to raw class indices.
func LoadEncoder(path string) (*LabelEncoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read encoder: %w", err)
	}

	var enc LabelEncoder
	if err := json.Unmarshal(data, &enc); err != nil {
		return nil, fmt.Errorf("decode encoder: %w", err)
	}
	if len(enc.Classes) == 0 {
		return nil, fmt.Errorf("encoder %s: empty class list", path)
	}
	return &enc, nil
}
