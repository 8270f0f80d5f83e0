package puzzle

import (
	"fmt"
	"time"
)

type Source string

const (
	SourceWSJ      Source = "wsj"
	SourceGuardian Source = "guardian"
)

type Variant string

const (
	VariantStandard Variant = "standard"
	VariantNumber   Variant = "number"
	VariantVariety  Variant = "variety"
	VariantCryptic  Variant = "cryptic"
	VariantQuick    Variant = "quick"
)

// Kind is the source+variant discriminator the pattern table is keyed by.
type Kind struct {
	Source  Source
	Variant Variant
}

func (k Kind) String() string {
	return string(k.Source) + "/" + string(k.Variant)
}

var (
	WSJStandard     = Kind{Source: SourceWSJ, Variant: VariantStandard}
	WSJNumber       = Kind{Source: SourceWSJ, Variant: VariantNumber}
	WSJVariety      = Kind{Source: SourceWSJ, Variant: VariantVariety}
	GuardianCryptic = Kind{Source: SourceGuardian, Variant: VariantCryptic}
	GuardianQuick   = Kind{Source: SourceGuardian, Variant: VariantQuick}
)

// Identity is one deliverable puzzle for one day. Only the year, month and
// day of Date are used.
type Identity struct {
	Kind
	Date time.Time
}

func (id Identity) String() string {
	return fmt.Sprintf("%s@%s", id.Kind, id.ISO())
}

// ISO is the canonical YYYY-MM-DD stamp.
func (id Identity) ISO() string {
	return id.Date.Format(time.DateOnly)
}

// MDY is the MMDDYYYY stamp of the WSJ file names.
func (id Identity) MDY() string {
	return id.Date.Format("01022006")
}

// YMD is the YYYYMMDD stamp of the Guardian file names.
func (id Identity) YMD() string {
	return id.Date.Format("20060102")
}

// Year is the four-digit year stamp.
func (id Identity) Year() string {
	return id.Date.Format("2006")
}

// CanonicalName is the stable {YYYY}-{MM}-{DD}-{source}-{variant}.pdf name
// used locally, as the idempotency key, and as the remote display name.
func (id Identity) CanonicalName() string {
	return fmt.Sprintf("%s-%s-%s.pdf", id.ISO(), id.Source, id.Variant)
}

// DeliverySpec is the resolved download and delivery target of an Identity.
type DeliverySpec struct {
	Identity      Identity
	RemoteURL     string
	LocalPath     string
	CanonicalName string
}
