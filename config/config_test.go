package config

import (
	"testing"

	"github.com/forestrie/go-vectorproof/hash"
	"github.com/stretchr/testify/assert"
)

func TestParseModeDefaultsToSorted(t *testing.T) {
	m, err := ParseMode("")
	assert.NoError(t, err)
	assert.Equal(t, hash.Sorted, m)
}

func TestParseModeOrdered(t *testing.T) {
	m, err := ParseMode("Ordered")
	assert.NoError(t, err)
	assert.Equal(t, hash.Ordered, m)
}

func TestParseModeRejectsUnknown(t *testing.T) {
	_, err := ParseMode("bogus")
	assert.Error(t, err)
}

func TestParseFormatDefaultsToCBOR(t *testing.T) {
	f, err := ParseFormat("")
	assert.NoError(t, err)
	assert.Equal(t, FormatCBOR, f)
}

func TestParseFormatRejectsUnknown(t *testing.T) {
	_, err := ParseFormat("yaml")
	assert.Error(t, err)
}
