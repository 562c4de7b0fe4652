package derivation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
)

// MaxAccountIndex is the largest non-hardened BIP-32 child index.
const MaxAccountIndex = bip32.FirstHardenedChild - 1

// DerivationPath is the binary form of a BIP-32 path, hardened components have
// bip32.FirstHardenedChild added.
type DerivationPath []uint32

// basePath is m/44'/60'/0'/0, the EVM external chain.
var basePath = DerivationPath{
	bip32.FirstHardenedChild + 44,
	bip32.FirstHardenedChild + 60,
	bip32.FirstHardenedChild + 0,
	0,
}

// AccountPath returns the path of the account at index.
func AccountPath(index int) (DerivationPath, error) {
	if index < 0 || int64(index) > int64(MaxAccountIndex) {
		return nil, errors.Wrapf(ErrDerivation, "account index %d out of range [0, %d]", index, MaxAccountIndex)
	}

	path := make(DerivationPath, 0, len(basePath)+1)
	path = append(path, basePath...)

	return append(path, uint32(index)), nil
}

// ParseDerivationPath converts a path such as "m/44'/60'/0'/0/1" to its binary form.
func ParseDerivationPath(s string) (DerivationPath, error) {
	elems := strings.Split(strings.TrimSpace(s), "/")
	if len(elems) < 2 || strings.TrimSpace(elems[0]) != "m" {
		return nil, errors.Wrapf(ErrDerivation, "malformed derivation path %q", s)
	}

	path := make(DerivationPath, 0, len(elems)-1)
	for _, elem := range elems[1:] {
		elem = strings.TrimSpace(elem)

		var offset uint32
		if strings.HasSuffix(elem, "'") {
			offset = bip32.FirstHardenedChild
			elem = strings.TrimSuffix(elem, "'")
		}

		value, err := strconv.ParseUint(elem, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrDerivation, "invalid path segment %q", elem)
		}

		if value > uint64(math.MaxUint32-offset) || (offset > 0 && value >= uint64(bip32.FirstHardenedChild)) {
			return nil, errors.Wrapf(ErrDerivation, "path segment %q out of range", elem)
		}

		path = append(path, offset+uint32(value))
	}

	return path, nil
}

// String returns the canonical representation, hardened components marked with '.
func (p DerivationPath) String() string {
	if len(p) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("m")

	for _, component := range p {
		if component >= bip32.FirstHardenedChild {
			fmt.Fprintf(&b, "/%d'", component-bip32.FirstHardenedChild)
			continue
		}

		fmt.Fprintf(&b, "/%d", component)
	}

	return b.String()
}
