package language

import (
	"github.com/evoglot/evoglot/internal/phonetics"
)

// Phoneme is one sound a language uses: a registry symbol plus the
// letters that may spell it. Weight biases how often the sound is
// picked when building words; zero means unweighted.
type Phoneme struct {
	IPA     string
	Letters []string
	Weight  int
}

// Inventory is the set of phonemes a language draws from, in the order
// they were added. Only symbols known to the registry may be added.
type Inventory struct {
	registry *phonetics.Registry
	order    []string
	phonemes map[string]Phoneme
}

// NewInventory returns an empty inventory backed by the given registry.
func NewInventory(registry *phonetics.Registry) *Inventory {
	return &Inventory{
		registry: registry,
		phonemes: make(map[string]Phoneme),
	}
}

// Add registers a phoneme with its spellable letters. The symbol must
// exist in the backing registry and carry at least one letter.
// Re-adding a symbol replaces its letters and weight but keeps its
// position in the inventory order.
func (inv *Inventory) Add(ipa string, letters []string, weight int) error {
	if !inv.registry.HasSymbol(ipa) {
		return &phonetics.UnknownSymbolError{Symbol: ipa}
	}
	if len(letters) == 0 {
		return &InvalidPhonemeError{IPA: ipa, Message: "at least one letter required"}
	}

	if _, exists := inv.phonemes[ipa]; !exists {
		inv.order = append(inv.order, ipa)
	}
	inv.phonemes[ipa] = Phoneme{
		IPA:     ipa,
		Letters: append([]string(nil), letters...),
		Weight:  weight,
	}
	return nil
}

// Has reports whether the inventory contains a symbol.
func (inv *Inventory) Has(ipa string) bool {
	_, ok := inv.phonemes[ipa]
	return ok
}

// Get returns the phoneme stored for a symbol.
func (inv *Inventory) Get(ipa string) (Phoneme, error) {
	p, ok := inv.phonemes[ipa]
	if !ok {
		return Phoneme{}, &phonetics.UnknownSymbolError{Symbol: ipa}
	}
	return Phoneme{IPA: p.IPA, Letters: append([]string(nil), p.Letters...), Weight: p.Weight}, nil
}

// Letters returns the spellable letters for a symbol.
func (inv *Inventory) Letters(ipa string) ([]string, error) {
	p, err := inv.Get(ipa)
	if err != nil {
		return nil, err
	}
	return p.Letters, nil
}

// Remove deletes a phoneme from the inventory.
// Reports whether the symbol was present.
func (inv *Inventory) Remove(ipa string) bool {
	if _, ok := inv.phonemes[ipa]; !ok {
		return false
	}
	delete(inv.phonemes, ipa)
	for i, symbol := range inv.order {
		if symbol == ipa {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
	return true
}

// Symbols returns the inventory's symbols in the order they were added.
// The returned slice is a copy.
func (inv *Inventory) Symbols() []string {
	return append([]string(nil), inv.order...)
}

// Len returns the number of phonemes in the inventory.
func (inv *Inventory) Len() int {
	return len(inv.phonemes)
}
