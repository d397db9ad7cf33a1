package controllers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/diarioweb/diario-backend/config"
	"github.com/diarioweb/diario-backend/models"
	"github.com/diarioweb/diario-backend/utils"
)

const (
	msgRequired      = "Este campo é obrigatório."
	msgEmailInvalid  = "Informe um endereço de email válido."
	msgPasswordMatch = "Os dois campos de senha não correspondem."
	msgUsernameTaken = "Um usuário com este nome de usuário já existe."
)

// sessionMaxAge: duas semanas, igual à validade do token
const sessionMaxAge = 14 * 24 * 3600

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ====== INPUT STRUCTS ======
type RegisterInput struct {
	Username  string `form:"username" json:"username"`
	Email     string `form:"email" json:"email"`
	Password1 string `form:"password1" json:"password1"`
	Password2 string `form:"password2" json:"password2"`
}

type LoginInput struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Next     string `form:"next" json:"next"`
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(utils.SessionCookie, token, sessionMaxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
}

// ====== HANDLERS ======

// RegisterForm renders the empty registration form.
func RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"username", "email", "password1", "password2"}})
}

// Register validates the submitted account data field by field, persists
// the user with a hashed credential, logs them in and redirects to the
// topic list. Field errors come back with the form, nothing is persisted.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	errs := gin.H{}
	if input.Password1 != input.Password2 {
		errs["password2"] = msgPasswordMatch
	}
	if input.Password1 == "" {
		errs["password1"] = msgRequired
	}
	if input.Email == "" {
		errs["email"] = msgRequired
	} else if !emailRx.MatchString(input.Email) {
		errs["email"] = msgEmailInvalid
	}
	if input.Username == "" {
		errs["username"] = msgRequired
	} else {
		var existing models.User
		if err := config.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
			errs["username"] = msgUsernameTaken
		}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusOK, gin.H{"errors": errs})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password1), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível criptografar a senha"})
		return
	}

	newUser := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		IsActive: true,
	}
	if err := config.DB.Create(&newUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar usuário"})
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), newUser.Username, newUser.CanModerate())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível criar a sessão"})
		return
	}
	setSessionCookie(c, token)

	c.Redirect(http.StatusFound, "/topicos/")
}

// LoginForm renders the login form, echoing the continuation target.
func LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"next": c.Query("next")})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário ou senha incorretos"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário ou senha incorretos"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Conta desativada"})
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Username, user.CanModerate())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível criar a sessão"})
		return
	}
	setSessionCookie(c, token)

	next := input.Next
	if next == "" {
		next = c.Query("next")
	}
	if next == "" {
		next = "/topicos/"
	}
	c.Redirect(http.StatusFound, next)
}

func Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/topicos/")
}

type ChangePasswordInput struct {
	OldPassword string `form:"old_password" json:"old_password"`
	NewPassword string `form:"new_password" json:"new_password"`
}

func ChangePassword(c *gin.Context) {
	db := config.DB
	userID := c.GetString("user_id")

	var input ChangePasswordInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.NewPassword == "" {
		c.JSON(http.StatusOK, gin.H{"errors": gin.H{"new_password": msgRequired}})
		return
	}

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha atual incorreta"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível criptografar a nova senha"})
		return
	}

	user.Password = string(hashed)
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar a senha"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha alterada com sucesso"})
}
