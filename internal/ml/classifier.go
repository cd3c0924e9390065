// Package ml wraps the pre-trained crop classifier and its label encoder.
// Both are opaque artifacts exported to JSON by the upstream training
// pipeline; this package loads them once at startup and runs inference.
package ml

import (
	"fmt"

	apperrors "cropadvisor/internal/errors"
)

// FeatureCount is the number of inputs the crop classifier expects:
// N, P, K, temperature, humidity, pH and rainfall, in that order.
const FeatureCount = 7

// Node is a single split or leaf in a decision tree. Leaves have Feature == -1
// and carry the predicted class index in Class.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Class     int     `json:"class"`
}

// Tree is a serialized decision tree; node 0 is the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Classifier is a forest of decision trees. Classes is optional: when present
// the classifier emits labels directly, otherwise it emits encoded class
// indices that the label encoder maps back. The struct is read-only after
// load and safe for concurrent use.
type Classifier struct {
	NFeatures int      `json:"n_features"`
	Trees     []Tree   `json:"trees"`
	Classes   []string `json:"classes,omitempty"`
}

// Predict runs a single-row batch through the forest and returns the
// majority-vote prediction.
func (c *Classifier) Predict(features []float64) (RawLabel, error) {
	if len(features) != c.NFeatures {
		return nil, fmt.Errorf("%w: expected %d features, got %d", apperrors.ErrPredictionFailure, c.NFeatures, len(features))
	}

	votes := make(map[int]int, len(c.Trees))
	for i := range c.Trees {
		class, err := c.Trees[i].classify(features)
		if err != nil {
			return nil, err
		}
		votes[class]++
	}

	// Majority vote; ties break toward the lower class index so the result
	// is deterministic.
	best, bestVotes := -1, 0
	for class, n := range votes {
		if n > bestVotes || (n == bestVotes && class < best) {
			best, bestVotes = class, n
		}
	}
	if best < 0 {
		return nil, fmt.Errorf("%w: empty forest", apperrors.ErrPredictionFailure)
	}

	if len(c.Classes) > 0 {
		if best >= len(c.Classes) {
			return nil, fmt.Errorf("%w: class %d out of range", apperrors.ErrPredictionFailure, best)
		}
		return DirectLabel(c.Classes[best]), nil
	}
	return EncodedLabel(best), nil
}

func (t *Tree) classify(features []float64) (int, error) {
	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, fmt.Errorf("%w: node index %d out of range", apperrors.ErrPredictionFailure, idx)
		}
		n := t.Nodes[idx]
		if n.Feature < 0 {
			return n.Class, nil
		}
		if n.Feature >= len(features) {
			return 0, fmt.Errorf("%w: split on unknown feature %d", apperrors.ErrPredictionFailure, n.Feature)
		}
		if features[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return 0, fmt.Errorf("%w: cycle in tree", apperrors.ErrPredictionFailure)
}
