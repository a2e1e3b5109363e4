// Package basesvc - Test điều kiện báo NotFound của thao tác update.
package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestUpdateMissedTarget_NoOpUpdateIsNotMissed(t *testing.T) {
	// Update với giá trị giống hệt: match nhưng không modify — vẫn là update hợp lệ
	result := &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 0}
	if updateMissedTarget(result) {
		t.Error("update no-op trên document tồn tại không được coi là NotFound")
	}
}

func TestUpdateMissedTarget_NothingMatched(t *testing.T) {
	result := &mongo.UpdateResult{MatchedCount: 0, ModifiedCount: 0}
	if !updateMissedTarget(result) {
		t.Error("không match document nào phải báo NotFound")
	}
}

func TestUpdateMissedTarget_UpsertCreatesDocument(t *testing.T) {
	result := &mongo.UpdateResult{MatchedCount: 0, UpsertedCount: 1}
	if updateMissedTarget(result) {
		t.Error("upsert tạo document mới không được coi là NotFound")
	}
}
