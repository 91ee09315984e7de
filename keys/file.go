package keys

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

// LoadFile reads a key file holding a JSON array of the 64 keypair bytes.
func LoadFile(path string) (*Keypair, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read key file %s", path)
	}

	return ParseJSON(bz)
}

func ParseJSON(bz []byte) (*Keypair, error) {
	raw, err := decodeJSONBytes(bz)
	if err != nil {
		return nil, err
	}

	return FromBytes(raw)
}

// EncodeJSON returns the key file form of a keypair, e.g. [12,34,...].
func EncodeJSON(k *Keypair) ([]byte, error) {
	return encodeJSONBytes(k.Bytes())
}

func FromBase58(s string) (*Keypair, error) {
	raw, err := base58.Decode(strings.TrimSpace(s))
	if err != nil {
		return nil, types.WithCause(types.ErrMalformedKey, err)
	}

	return FromBytes(raw)
}

func EncodeBase58(k *Keypair) string {
	return base58.Encode(k.Bytes())
}

// Base58ToJSON converts a base58 private key, as exported by browser wallets, to the key file
// format.
func Base58ToJSON(s string) ([]byte, error) {
	k, err := FromBase58(s)
	if err != nil {
		return nil, err
	}

	return EncodeJSON(k)
}

// JSONToBase58 converts the key file format to a base58 private key.
func JSONToBase58(bz []byte) (string, error) {
	k, err := ParseJSON(bz)
	if err != nil {
		return "", err
	}

	return EncodeBase58(k), nil
}

// A []byte is marshalled by encoding/json as base64, key files use a list of numbers instead.
func decodeJSONBytes(bz []byte) ([]byte, error) {
	var values []int
	if err := json.Unmarshal(bz, &values); err != nil {
		return nil, types.WithCause(types.ErrMalformedKey, err)
	}

	raw := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, errors.Wrapf(types.ErrMalformedKey, "value %d at index %d is not a byte", v, i)
		}
		raw[i] = byte(v)
	}

	return raw, nil
}

func encodeJSONBytes(raw []byte) ([]byte, error) {
	values := make([]int, len(raw))
	for i, b := range raw {
		values[i] = int(b)
	}

	return json.Marshal(values)
}
