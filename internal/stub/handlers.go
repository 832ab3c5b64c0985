// internal/stub/handlers.go
package stub

import (
	"net/http"
	"time"

	"eventflow-client/internal/config"
	"eventflow-client/internal/domain/event"
	"eventflow-client/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const wireDateLayout = "02/01/2006 15:04"

type Handlers struct {
	cfg     config.StubConfig
	store   *Store
	tokens  *TokenManager
	limiter *LoginRateLimiter
	logger  *zap.Logger
}

func NewHandlers(cfg config.StubConfig, store *Store, tokens *TokenManager, limiter *LoginRateLimiter, logger *zap.Logger) *Handlers {
	return &Handlers{
		cfg:     cfg,
		store:   store,
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
	}
}

// ========== Auth ==========

type loginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// Login authenticates against the seeded accounts. Responses use the
// {token, perfil, nome, id} shape, or the legacy {token, role, name, id}
// one when configured, so both client adapters get exercised.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"email": "email e senha são obrigatórios"}})
		return
	}

	allowed, remaining := h.limiter.CheckLoginAttempt(c.ClientIP(), req.Email)
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"message": "muitas tentativas de login"})
		return
	}

	account, found := h.store.FindByEmail(req.Email)
	if !found || bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(req.Senha)) != nil {
		h.logger.Warn("login rejected",
			zap.String("email", req.Email),
			zap.Int64("attempts_remaining", remaining),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "credenciais inválidas"})
		return
	}

	token, err := h.tokens.Issue(account.ID, account.Perfil, account.Nome)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "falha ao emitir token"})
		return
	}
	h.limiter.ResetLoginAttempts(c.ClientIP(), req.Email)

	h.logger.Info("user logged in",
		zap.String("user_id", account.ID),
		zap.String("perfil", account.Perfil),
	)

	if h.cfg.LegacyFields {
		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"role":  account.Perfil,
			"name":  account.Nome,
			"id":    account.ID,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"perfil": account.Perfil,
		"nome":   account.Nome,
		"id":     account.ID,
	})
}

// ========== Events ==========

// ListEvents is public; a bearer token is accepted but not required.
func (h *Handlers) ListEvents(c *gin.Context) {
	events := h.store.Events()
	if h.cfg.WrapContent {
		c.JSON(http.StatusOK, gin.H{"content": events})
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent validates required fields and the wire date format,
// answering validation failures with a per-field errors map.
func (h *Handlers) CreateEvent(c *gin.Context) {
	var ev event.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"body": "payload inválido"}})
		return
	}

	errs := map[string]string{}
	required := map[string]string{
		"nome":       ev.Nome,
		"tipo":       ev.Tipo,
		"local":      ev.Local,
		"dataInicio": ev.DataInicio,
		"dataFinal":  ev.DataFinal,
	}
	for field, value := range required {
		if value == "" {
			errs[field] = "campo obrigatório"
		}
	}
	if ev.Tipo != "" && !event.IsValidType(ev.Tipo) {
		errs["tipo"] = "tipo de evento desconhecido"
	}
	for field, value := range map[string]string{"dataInicio": ev.DataInicio, "dataFinal": ev.DataFinal} {
		if value == "" {
			continue
		}
		if _, err := time.Parse(wireDateLayout, value); err != nil {
			errs[field] = "data deve estar no formato DD/MM/YYYY HH:mm"
		}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	created := h.store.AddEvent(ev)
	h.logger.Info("event created",
		zap.Int64("event_id", created.ID),
		zap.String("tipo", created.Tipo),
	)
	c.JSON(http.StatusCreated, created)
}

// ========== Users ==========

// ListUsers returns the full snapshot (admin only, enforced in routing).
func (h *Handlers) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Users())
}

// DeleteUser removes an account by id.
func (h *Handlers) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteUser(id) {
		c.JSON(http.StatusNotFound, gin.H{"message": "usuário não encontrado"})
		return
	}
	h.logger.Info("user deleted", zap.String("user_id", id))
	c.Status(http.StatusNoContent)
}

type createUserRequest struct {
	Nome           string `json:"nome" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	CPF            string `json:"cpf" binding:"required"`
	Telefone       string `json:"telefone"`
	Tipo           int    `json:"tipo"`
	DataNascimento string `json:"dataNascimento"`
	Senha          string `json:"senha" binding:"required,min=6"`
}

// CreateUser is the registration hand-off target.
func (h *Handlers) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"body": err.Error()}})
		return
	}
	if h.store.EmailOrCPFExists(req.Email, req.CPF) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"email": "email ou CPF já cadastrado"}})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "falha ao registrar usuário"})
		return
	}

	account := &Account{
		User: user.User{
			ID:             ulid.Make().String(),
			Nome:           req.Nome,
			Email:          req.Email,
			CPF:            req.CPF,
			Telefone:       req.Telefone,
			Tipo:           req.Tipo,
			DataNascimento: req.DataNascimento,
			CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		},
		Perfil:       perfilForTipo(req.Tipo),
		PasswordHash: hash,
	}
	h.store.AddAccount(account)

	h.logger.Info("user registered",
		zap.String("user_id", account.ID),
		zap.String("perfil", account.Perfil),
	)
	c.JSON(http.StatusCreated, account.User)
}

func perfilForTipo(tipo int) string {
	switch tipo {
	case user.TypeAdmin:
		return "admin"
	case user.TypeEmployee:
		return "organizador"
	default:
		return "participante"
	}
}
