package models

// SessionUser ผู้ใช้ที่ login ผ่านหน้า designer (ไม่มีการตรวจรหัสผ่านจริง)
type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Designer views the session can switch between.
const (
	ViewLogin  = "login"
	ViewAdmin  = "admin"
	ViewPublic = "public"
)

// LoginInput body ของ POST /designer/login
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// DesignerState is the whole in-memory state of one designer session.
type DesignerState struct {
	Blueprint   Blueprint    `json:"blueprint"`
	Submissions []Submission `json:"submissions"`
	User        *SessionUser `json:"user"`
	CurrentView string       `json:"currentView"`
	LoginStatus string       `json:"loginStatus"`
	Flash       string       `json:"flash"`
}
