// internal/storage/model_test.go
//
// 驗證 List 的插入順序、線性查詢「第一筆優先」與以身分移除的行為。
package storage

import "testing"

type item struct {
	key string
}

// TestListAppendFirst 驗證 First 回傳第一筆符合條件的元素。
func TestListAppendFirst(t *testing.T) {
	l := NewList[item]()
	a := &item{key: "x"}
	b := &item{key: "x"}
	l.Append(a)
	l.Append(b)

	got, ok := l.First(func(v *item) bool { return v.key == "x" })
	if !ok || got != a {
		t.Fatalf("First returned %p ok=%v, want %p", got, ok, a)
	}
	if _, ok := l.First(func(v *item) bool { return v.key == "y" }); ok {
		t.Fatal("First should not match missing key")
	}
	if l.Len() != 2 {
		t.Fatalf("Len=%d want=2", l.Len())
	}
}

// TestListRemoveByIdentity 驗證移除以指標為準：內容相同的另一筆不受影響。
func TestListRemoveByIdentity(t *testing.T) {
	l := NewList[item]()
	a := &item{key: "x"}
	b := &item{key: "x"}
	c := &item{key: "z"}
	l.Append(a)
	l.Append(b)
	l.Append(c)

	if !l.Remove(a) {
		t.Fatal("Remove(a) = false")
	}
	all := l.All()
	if len(all) != 2 || all[0] != b || all[1] != c {
		t.Fatalf("after remove: %+v", all)
	}
	// 重複移除同一指標應回傳 false
	if l.Remove(a) {
		t.Fatal("second Remove(a) should be false")
	}
	if l.Remove(&item{key: "z"}) {
		t.Fatal("Remove of an equal but distinct pointer should be false")
	}
}

// TestListAllIsCopy 驗證 All 回傳的切片與內部狀態分離。
func TestListAllIsCopy(t *testing.T) {
	l := NewList[item]()
	l.Append(&item{key: "a"})
	all := l.All()
	all[0] = nil
	if got, ok := l.First(func(v *item) bool { return v != nil && v.key == "a" }); !ok || got == nil {
		t.Fatal("mutating All() result leaked into the list")
	}
}
