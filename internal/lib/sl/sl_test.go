package sl_test

import (
	"errors"
	"testing"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/sl"
	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	err := errors.New("something broke")
	attr := sl.Err(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "something broke", attr.Value.String())
}
