package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hpowerco/pedidos-app/models"
	"github.com/hpowerco/pedidos-app/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetAllUsers -> GET /api/usuarios, ordered by name
func (uc *UserController) GetAllUsers(c *gin.Context) {
	users := make([]models.User, 0)
	if err := uc.DB.Order("nombre").Find(&users).Error; err != nil {
		utils.ErrorLogger.Printf("Error listing users: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error obteniendo usuarios")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser -> POST /api/usuarios. A blank name is rejected before any
// store access.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req struct {
		Name string `json:"nombre"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "El nombre es obligatorio")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "El nombre es obligatorio")
		return
	}

	user := models.User{Name: name}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.ErrorLogger.Printf("Error creating user: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Error creando usuario")
		return
	}

	utils.InfoLogger.Printf("User created: %s (id=%d)", user.Name, user.ID)
	c.JSON(http.StatusOK, user)
}

// UpdateUser -> PUT /api/usuarios/:id. Validation runs before the lookup so
// a blank name never touches the store.
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req struct {
		Name string `json:"nombre"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "El nombre es obligatorio")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "El nombre es obligatorio")
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	user.Name = name
	if err := uc.DB.Save(&user).Error; err != nil {
		utils.ErrorLogger.Printf("Error updating user %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, "Error actualizando usuario")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser -> DELETE /api/usuarios/:id
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		utils.ErrorLogger.Printf("Error deleting user %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, "Error eliminando usuario")
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Usuario eliminado exitosamente")
}
