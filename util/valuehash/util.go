package valuehash

import "github.com/btcsuite/btcutil/base58"

func toString(b []byte) string {
	return base58.Encode(b)
}

func fromString(s string) []byte {
	return base58.Decode(s)
}
