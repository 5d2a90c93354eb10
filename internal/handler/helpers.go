package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/apierror"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/repository"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondServiceError maps domain errors onto HTTP status codes:
// referential-integrity and consistency violations are conflicts, missing
// records are 404, anything else is a plain validation failure.
func respondServiceError(c *gin.Context, err error) {
	var estoqueErr *service.EstoqueInsuficienteError
	switch {
	case errors.Is(err, service.ErrColaboradorComEmprestimos),
		errors.Is(err, service.ErrEquipamentoComEmprestimos),
		errors.Is(err, service.ErrEmprestimoJaDevolvido),
		errors.Is(err, repository.ErrEstoqueNegativo):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &estoqueErr):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case strings.Contains(err.Error(), "não encontrado"):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
