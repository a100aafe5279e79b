package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/madhannmady/Expense-tracker-application/internal/httputil"
	"github.com/madhannmady/Expense-tracker-application/internal/models"
	"github.com/madhannmady/Expense-tracker-application/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	maxNoteTitleLength       = 100
	maxNoteDescriptionLength = 2000
)

// NotesEditable defines the fields that can be set for the notes of
// a month, including the full set of note entries.
type NotesEditable struct {
	Month int                 `json:"month"`
	Year  int                 `json:"year"`
	Notes []NoteEntryEditable `json:"notes"`
}

type NoteEntryEditable struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	PersonName  string           `json:"personName"`
	Amount      *decimal.Decimal `json:"amount"`
}

func (n NotesEditable) validate() error {
	if err := types.NewMonthYear(n.Month, n.Year).Validate(); err != nil {
		return err
	}

	for _, entry := range n.Notes {
		if strings.TrimSpace(entry.Title) == "" {
			return errors.New("every note needs a title")
		}

		if len(entry.Title) > maxNoteTitleLength {
			return fmt.Errorf("note titles are limited to %d characters", maxNoteTitleLength)
		}

		if len(entry.Description) > maxNoteDescriptionLength {
			return fmt.Errorf("note descriptions are limited to %d characters", maxNoteDescriptionLength)
		}

		switch entry.Type {
		case "", models.NoteTypeGeneral, models.NoteTypeLending:
		default:
			return fmt.Errorf("note type must be either %q or %q", models.NoteTypeGeneral, models.NoteTypeLending)
		}

		if entry.Amount != nil && entry.Amount.IsNegative() {
			return errors.New("note amounts cannot be negative")
		}
	}

	return nil
}

// entryModels builds the NoteEntry resources for the request data.
func (n NotesEditable) entryModels(notesID uint) []models.NoteEntry {
	entries := make([]models.NoteEntry, 0, len(n.Notes))

	for _, entry := range n.Notes {
		noteType := entry.Type
		if noteType == "" {
			noteType = models.NoteTypeGeneral
		}

		var personName *string
		if strings.TrimSpace(entry.PersonName) != "" {
			name := entry.PersonName
			personName = &name
		}

		entries = append(entries, models.NoteEntry{
			NotesID:     notesID,
			Title:       entry.Title,
			Description: entry.Description,
			Type:        noteType,
			PersonName:  personName,
			Amount:      entry.Amount,
		})
	}

	return entries
}

// RegisterNotesRoutes registers the routes for monthly notes with
// the RouterGroup that is passed.
func RegisterNotesRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetNotes)
		r.POST("", CreateNotes)
	}

	// Notes for a specific month
	{
		r.OPTIONS("/month/:month/:year", httputil.OptionsGet)
		r.GET("/month/:month/:year", GetNotesByMonth)
	}

	// Notes with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetNotesByID)
		r.PUT("/:id", UpdateNotes)
		r.DELETE("/:id", DeleteNotes)
	}
}

// fetchNotes returns the notes with the ID for the user, entries included.
func fetchNotes(id, userID uint) (models.MonthlyNotes, error) {
	var notes models.MonthlyNotes

	err := models.DB.
		Preload("NoteEntries").
		Where("user_id = ?", userID).
		First(&notes, id).Error

	return notes, err
}

// @Summary		List notes
// @Description	Returns all monthly notes of the user, newest month first
// @Tags			Notes
// @Produce		json
// @Success		200	{array}		models.MonthlyNotes
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/notes [get]
func GetNotes(c *gin.Context) {
	notes := make([]models.MonthlyNotes, 0)

	err := models.DB.
		Preload("NoteEntries").
		Where("user_id = ?", currentUser(c).ID).
		Order("year DESC").
		Order("month DESC").
		Find(&notes).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// @Summary		Create notes
// @Description	Creates the notes for a month. A month can only have one set of notes.
// @Tags			Notes
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.MonthlyNotes
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			notes	body		NotesEditable	true	"Notes"
// @Router			/api/notes [post]
func CreateNotes(c *gin.Context) {
	var data NotesEditable
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if err := data.validate(); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	userID := currentUser(c).ID

	var count int64
	err := models.DB.Model(&models.MonthlyNotes{}).
		Where("user_id = ? AND month = ? AND year = ?", userID, data.Month, data.Year).
		Count(&count).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if count > 0 {
		httputil.NewError(c, http.StatusBadRequest, fmt.Errorf("Notes for %s already exist.", types.NewMonthYear(data.Month, data.Year)))
		return
	}

	notes := models.MonthlyNotes{
		UserID:      userID,
		Month:       data.Month,
		Year:        data.Year,
		NoteEntries: data.entryModels(0),
	}

	err = models.DB.Create(&notes).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	notes, err = fetchNotes(notes.ID, userID)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, notes)
}

// @Summary		Get notes
// @Description	Returns the notes with the ID
// @Tags			Notes
// @Produce		json
// @Success		200	{object}	models.MonthlyNotes
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		int	true	"ID of the notes"
// @Router			/api/notes/{id} [get]
func GetNotesByID(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	notes, err := fetchNotes(id, currentUser(c).ID)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// @Summary		Get notes for month
// @Description	Returns the notes for the month, or 404 if none exist
// @Tags			Notes
// @Produce		json
// @Success		200		{object}	models.MonthlyNotes
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			month	path		int	true	"Month"
// @Param			year	path		int	true	"Year"
// @Router			/api/notes/month/{month}/{year} [get]
func GetNotesByMonth(c *gin.Context) {
	month, err := httputil.ParseInt(c, "month")
	if err != nil {
		return
	}

	year, err := httputil.ParseInt(c, "year")
	if err != nil {
		return
	}

	var notes models.MonthlyNotes
	err = models.DB.
		Preload("NoteEntries").
		Where("user_id = ? AND month = ? AND year = ?", currentUser(c).ID, month, year).
		First(&notes).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// @Summary		Update notes
// @Description	Updates the notes with the ID, replacing all note entries
// @Tags			Notes
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.MonthlyNotes
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		int				true	"ID of the notes"
// @Param			notes	body		NotesEditable	true	"Notes"
// @Router			/api/notes/{id} [put]
func UpdateNotes(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	userID := currentUser(c).ID

	notes, err := fetchNotes(id, userID)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	var data NotesEditable
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if err := data.validate(); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&notes).Updates(map[string]any{
			"month": data.Month,
			"year":  data.Year,
		}).Error
		if err != nil {
			return err
		}

		err = tx.Where("notes_id = ?", notes.ID).Delete(&models.NoteEntry{}).Error
		if err != nil {
			return err
		}

		entries := data.entryModels(notes.ID)
		if len(entries) > 0 {
			return tx.Create(&entries).Error
		}

		return nil
	})
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	notes, err = fetchNotes(notes.ID, userID)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// @Summary		Delete notes
// @Description	Deletes the notes with the ID and all their entries
// @Tags			Notes
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		int	true	"ID of the notes"
// @Router			/api/notes/{id} [delete]
func DeleteNotes(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	notes, err := fetchNotes(id, currentUser(c).ID)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	err = models.DB.Delete(&notes).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Notes deleted"})
}
