package mock

import "github.com/fwojciec/opdoc"

var _ opdoc.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of opdoc.Classifier.
type Classifier struct {
	ClassifyFn func(keyword string) (string, error)
}

func (c *Classifier) Classify(keyword string) (string, error) {
	return c.ClassifyFn(keyword)
}
