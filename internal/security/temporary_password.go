package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	upperAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerAlphabet = "abcdefghijkmnopqrstuvwxyz"
	digitAlphabet = "23456789"

	MinTemporaryPasswordLength = 8
)

var errEmptyAlphabet = errors.New("alphabet must not be empty")

// TemporaryPassword returns a random password that always contains an upper
// case letter, a lower case letter and a digit. Look-alike characters are
// excluded. Lengths under MinTemporaryPasswordLength are raised to it.
func TemporaryPassword(length int) (string, error) {
	if length < MinTemporaryPasswordLength {
		length = MinTemporaryPasswordLength
	}

	alphabet := upperAlphabet + lowerAlphabet + digitAlphabet
	value := make([]byte, 0, length)
	for _, required := range []string{upperAlphabet, lowerAlphabet, digitAlphabet} {
		char, err := randomChar(required)
		if err != nil {
			return "", err
		}
		value = append(value, char)
	}
	for len(value) < length {
		char, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		value = append(value, char)
	}

	if err := shuffle(value); err != nil {
		return "", err
	}
	return string(value), nil
}

func randomChar(alphabet string) (byte, error) {
	if alphabet == "" {
		return 0, errEmptyAlphabet
	}
	position, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, err
	}
	return alphabet[position.Int64()], nil
}

// shuffle is a Fisher-Yates pass driven by crypto/rand.
func shuffle(value []byte) error {
	for index := len(value) - 1; index > 0; index-- {
		position, err := rand.Int(rand.Reader, big.NewInt(int64(index+1)))
		if err != nil {
			return err
		}
		swap := position.Int64()
		value[index], value[swap] = value[swap], value[index]
	}
	return nil
}
