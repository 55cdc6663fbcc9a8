package web

const (
	internalErrMsg     = "Nimadir xato ketdi. Keyinroq qayta urinib ko'ring."
	booksLoadErrMsg    = "Ma'lumotlarni yuklashda xatolik"
	bookNotFoundMsg    = "Kitob topilmadi"
	loginFailedMsg     = "Foydalanuvchi nomi yoki parol noto'g'ri"
	confirmRequiredMsg = "O'chirishni tasdiqlash talab qilinadi"
	invalidEmailMsg    = "To'g'ri email manzil kiriting"
	subscribedMsg      = "Yangi kitoblar haqida xabarnoma yoqildi"
	categorySavedMsg   = "Kategoriya saqlandi"
	categoryDeletedMsg = "Kategoriya o'chirildi"
	bookSavedMsg       = "Kitob saqlandi"
	bookDeletedMsg     = "Kitob o'chirildi"
	profileUpdatedMsg  = "Profil yangilandi"
)
