// Package basesvc - Test phân tích struct tag relationship.
package basesvc

import (
	"reflect"
	"strings"
	"testing"
)

type guardedModel struct {
	Name string `bson:"name"`

	_Relationships struct{} `relationship:"collection:child_items,field:parentId,message:Không thể xóa vì còn %d bản ghi con|collection:refs,field:ownerId"`
}

type plainModel struct {
	Name string `bson:"name"`
}

func TestParseRelationshipTag_MultipleDefinitions(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(guardedModel{}))
	if len(rels) != 2 {
		t.Fatalf("số relationship = %d, muốn 2 (phân cách bởi |)", len(rels))
	}

	first := rels[0]
	if first.CollectionName != "child_items" || first.FieldName != "parentId" {
		t.Errorf("relationship đầu = %s/%s, muốn child_items/parentId", first.CollectionName, first.FieldName)
	}
	if !strings.Contains(first.ErrorMessage, "%d") {
		t.Errorf("message phải giữ placeholder %%d, có %q", first.ErrorMessage)
	}

	// Định nghĩa không có message phải nhận message mặc định
	second := rels[1]
	if second.CollectionName != "refs" || second.FieldName != "ownerId" {
		t.Errorf("relationship thứ hai = %s/%s, muốn refs/ownerId", second.CollectionName, second.FieldName)
	}
	if second.ErrorMessage == "" {
		t.Error("relationship không khai báo message phải có message mặc định")
	}
}

func TestParseRelationshipTag_StaticMessageKeptVerbatim(t *testing.T) {
	type categoryLike struct {
		_Relationships struct{} `relationship:"collection:categories,field:parentId,message:Cannot delete category with sub-categories"`
	}
	rels := ParseRelationshipTag(reflect.TypeOf(categoryLike{}))
	if len(rels) != 1 {
		t.Fatalf("số relationship = %d, muốn 1", len(rels))
	}
	if rels[0].ErrorMessage != "Cannot delete category with sub-categories" {
		t.Errorf("message tĩnh phải giữ nguyên, có %q", rels[0].ErrorMessage)
	}
}

func TestParseRelationshipTag_NoTag(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(plainModel{}))
	if len(rels) != 0 {
		t.Errorf("model không có tag relationship phải trả về 0 định nghĩa, có %d", len(rels))
	}
}

func TestParseRelationshipTag_IgnoresIncompleteDefinition(t *testing.T) {
	type brokenModel struct {
		_Relationships struct{} `relationship:"collection:orphans"`
	}
	rels := ParseRelationshipTag(reflect.TypeOf(brokenModel{}))
	if len(rels) != 0 {
		t.Errorf("định nghĩa thiếu field phải bị bỏ qua, có %d", len(rels))
	}
}
