// internal/storage/model.go
//
// 定義「資料儲存層 (storage layer)」的記憶體結構。
// 本層只負責保存指標與插入順序，不涉入任何商業邏輯（帳戶規則由 bank 負責）。
// 所有資料僅存在於本次執行的記憶體中，程式結束即消失。
package storage

// List 為依插入順序保存 *T 的集合。
// 不建立索引：查詢皆為自頭開始的線性掃描，並允許相同內容的元素重複存在。
type List[T any] struct {
	items []*T
}

// NewList 建立空集合。
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Append 將元素加到集合尾端。
func (l *List[T]) Append(v *T) {
	l.items = append(l.items, v)
}

// First 回傳第一個符合 match 的元素；找不到時回傳 (nil, false)。
func (l *List[T]) First(match func(*T) bool) (*T, bool) {
	for _, v := range l.items {
		if match(v) {
			return v, true
		}
	}
	return nil, false
}

// Remove 以指標身分 (identity) 移除元素，而非比對內容。
// 回傳是否確實有元素被移除。
func (l *List[T]) Remove(v *T) bool {
	for i, cur := range l.items {
		if cur == v {
			copy(l.items[i:], l.items[i+1:])
			l.items[len(l.items)-1] = nil
			l.items = l.items[:len(l.items)-1]
			return true
		}
	}
	return false
}

// Len 回傳目前元素數量。
func (l *List[T]) Len() int {
	return len(l.items)
}

// All 回傳依插入順序排列的淺拷貝切片，呼叫端修改切片不影響集合本身。
func (l *List[T]) All() []*T {
	out := make([]*T, len(l.items))
	copy(out, l.items)
	return out
}
