package puzzle

import (
	"errors"
	"fmt"
	"path/filepath"
)

var ErrUnknownPuzzle = errors.New("unknown puzzle")

const (
	wsjBaseURL      = "https://s.wsj.net/public/resources/documents/"
	guardianBaseURL = "https://crosswords-static.guim.co.uk/"
)

// pattern describes a publisher file name as prefix + date stamp + suffix.
type pattern struct {
	baseURL string
	prefix  string
	stamp   func(Identity) string
	suffix  string
}

var patterns = map[Kind]pattern{
	WSJStandard:     {baseURL: wsjBaseURL, prefix: "XWD", stamp: Identity.MDY, suffix: ".pdf"},
	WSJNumber:       {baseURL: wsjBaseURL, prefix: "WSJ_", stamp: Identity.Year, suffix: ".pdf"},
	WSJVariety:      {baseURL: wsjBaseURL, prefix: "SatPuz", stamp: Identity.MDY, suffix: ".pdf"},
	GuardianCryptic: {baseURL: guardianBaseURL, prefix: "gdn.cryptic.", stamp: Identity.YMD, suffix: ".pdf"},
	GuardianQuick:   {baseURL: guardianBaseURL, prefix: "gdn.quick.", stamp: Identity.YMD, suffix: ".pdf"},
}

func (p pattern) fileName(id Identity) string {
	return p.prefix + p.stamp(id) + p.suffix
}

// Predictor maps identities to delivery specs, placing local copies in workDir.
type Predictor struct {
	workDir string
}

func NewPredictor(workDir string) *Predictor {
	return &Predictor{workDir: workDir}
}

func (pr *Predictor) Predict(id Identity) (DeliverySpec, error) {
	p, ok := patterns[id.Kind]
	if !ok {
		return DeliverySpec{}, fmt.Errorf("%w: no pattern for %s", ErrUnknownPuzzle, id.Kind)
	}

	name := id.CanonicalName()

	return DeliverySpec{
		Identity:      id,
		RemoteURL:     p.baseURL + p.fileName(id),
		LocalPath:     filepath.Join(pr.workDir, name),
		CanonicalName: name,
	}, nil
}

// PredictAll predicts every identity, failing on the first unknown one.
func (pr *Predictor) PredictAll(ids []Identity) ([]DeliverySpec, error) {
	specs := make([]DeliverySpec, 0, len(ids))
	for _, id := range ids {
		s, err := pr.Predict(id)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}
