package adminService

import "io"

type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Field bounds mirror what the backend enforces.
type BookForm struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"required,min=10,max=1000"`
	Category    string `validate:"required"`
	DownloadUrl string `validate:"required,url"`
	ImageName   string
	Image       io.Reader
}

type CategoryForm struct {
	Name string `validate:"required,max=100"`
}

type ProfileForm struct {
	Username string `validate:"required"`
	Email    string `validate:"omitempty,email"`
	FullName string `validate:"omitempty,max=200"`
}

var loginMessages = map[string]string{
	"Username": "Foydalanuvchi nomi kiritilishi shart",
	"Password": "Parol kiritilishi shart",
}

var bookMessages = map[string]string{
	"Title.required":       "Kitob nomi kiritilishi shart",
	"Title.max":            "Kitob nomi 200 ta belgidan oshmasligi kerak",
	"Description.required": "Tavsif kamida 10 ta belgidan iborat bo'lishi kerak",
	"Description.min":      "Tavsif kamida 10 ta belgidan iborat bo'lishi kerak",
	"Description.max":      "Tavsif 1000 ta belgidan oshmasligi kerak",
	"Category":             "Kategoriya tanlanishi shart",
	"DownloadUrl.required": "Yuklab olish havolasi kiritilishi shart",
	"DownloadUrl.url":      "To'g'ri URL formatida kiriting",
}

var categoryMessages = map[string]string{
	"Name.required": "Kategoriya nomi kiritilishi shart",
	"Name.max":      "Kategoriya nomi 100 ta belgidan oshmasligi kerak",
}

var profileMessages = map[string]string{
	"Username": "Foydalanuvchi nomi kiritilishi shart",
	"Email":    "To'g'ri email manzil kiriting",
	"FullName": "To'liq ism 200 ta belgidan oshmasligi kerak",
}
