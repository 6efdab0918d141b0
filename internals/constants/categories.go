package constants

// Kategori menu sesuai ENUM di DB:
// - "rice" (nasi)
// - "soup" (sup)
// - "main" (lauk utama)
// - "side" (lauk pendamping)
type MenuCategory string

const (
	CategoryRice MenuCategory = "rice"
	CategorySoup MenuCategory = "soup"
	CategoryMain MenuCategory = "main"
	CategorySide MenuCategory = "side"
)

// CategoryPriority menentukan urutan tampil pada ringkasan menu.
// Satu-satunya sumber kebenaran untuk urutan kategori, jangan duplikasi
// literal kategori di service lain.
var CategoryPriority = []MenuCategory{
	CategoryRice,
	CategorySoup,
	CategoryMain,
	CategorySide,
}

// MaxMenuDisplay membatasi jumlah item pada ringkasan.
// Hanya kategori "side" yang dipotong; rice/soup/main selalu tampil.
const MaxMenuDisplay = 5

// IsCapped true bila kategori boleh dipotong oleh MaxMenuDisplay.
func IsCapped(c MenuCategory) bool {
	return c == CategorySide
}

// ValidCategory memeriksa apakah string termasuk kategori yang dikenal.
func ValidCategory(s string) bool {
	switch MenuCategory(s) {
	case CategoryRice, CategorySoup, CategoryMain, CategorySide:
		return true
	}
	return false
}
