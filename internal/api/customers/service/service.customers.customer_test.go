// Package customersvc - Test thứ tự sắp xếp danh sách khách hàng.
package customersvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNewestFirstOptions_SortsByCreatedAtDesc(t *testing.T) {
	opts := NewestFirstOptions()
	assert.Equal(t, bson.M{"createdAt": -1}, opts.Sort)
}
