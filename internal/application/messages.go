package application

import (
	"errors"
	"fmt"
	"strings"

	"whatsapp-feedback-bot/internal/domain"
)

// User-facing copy for every dialogue step. Prompts echo back the value the
// user just provided (place name, stars, the full summary) so the user can
// verify what the bot captured; tests rely on that echo.

const (
	welcomeMessage = "¡Hola! Soy tu bot de feedback para Google Maps. 🗺️\n\n" +
		"Para empezar, envíame el nombre del lugar donde quieres dejar tu reseña.\n" +
		"Puedes escribir el nombre del local, restaurante, o cualquier lugar."

	placeRepromptMessage = "Por favor, envíame el nombre del lugar donde quieres dejar tu reseña."

	ratingErrorMessage = "Por favor, escribe solo un número del 1 al 5."

	photosPromptMessage = "¡Perfecto! Tu reseña está lista.\n\n" +
		"¿Quieres agregar fotos? Envía las imágenes que quieras incluir en tu reseña.\n" +
		"Si no quieres agregar fotos, escribe 'sin fotos' o 'no'."

	photosRepromptMessage = "Por favor, envía las fotos o escribe 'sin fotos' si no quieres agregar imágenes."

	confirmationRepromptMessage = "Por favor, escribe 'sí' para confirmar o 'no' para cancelar."

	cancelMessage = "Reseña cancelada. Puedes empezar de nuevo enviando cualquier mensaje."

	notAuthorizedMessage = "Lo siento, no tienes autorización para usar este bot."

	internalErrorMessage = "Lo siento, hubo un error interno. Por favor, intenta de nuevo."
)

// stars renders a rating as star glyphs
func stars(rating int) string {
	return strings.Repeat("⭐", rating)
}

func ratingPromptMessage(placeName string) string {
	return fmt.Sprintf("Perfecto! Buscaré: *%s*\n\n"+
		"Ahora califica el lugar del 1 al 5 estrellas:\n"+
		"⭐ = 1 estrella\n"+
		"⭐⭐ = 2 estrellas\n"+
		"⭐⭐⭐ = 3 estrellas\n"+
		"⭐⭐⭐⭐ = 4 estrellas\n"+
		"⭐⭐⭐⭐⭐ = 5 estrellas\n\n"+
		"Escribe solo el número (1, 2, 3, 4 o 5):", placeName)
}

func textPromptMessage(rating int) string {
	return fmt.Sprintf("¡Excelente! Calificación: %s\n\n"+
		"Ahora escribe tu reseña. Cuéntanos tu experiencia:\n"+
		"- ¿Qué te gustó?\n"+
		"- ¿Qué mejorarías?\n"+
		"- ¿Recomendarías el lugar?\n\n"+
		"Escribe tu comentario:", stars(rating))
}

// reviewTextErrorMessage maps a review-text validation error to its re-prompt
func reviewTextErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrReviewTextTooShort), errors.Is(err, domain.ErrReviewTextEmpty):
		return "Tu reseña es demasiado corta. Escribe al menos 10 caracteres contando tu experiencia:"
	case errors.Is(err, domain.ErrReviewTextTooLong):
		return "Tu reseña es demasiado larga (máximo 1000 caracteres). Intenta resumirla un poco:"
	default:
		return "No pude procesar tu reseña. Por favor, escribe tu comentario de nuevo:"
	}
}

func confirmationSummaryMessage(session *domain.ReviewSession) string {
	return fmt.Sprintf("📋 *Resumen de tu reseña:*\n\n"+
		"📍 *Lugar:* %s\n"+
		"⭐ *Calificación:* %s\n"+
		"📝 *Comentario:* %s\n"+
		"📸 *Fotos:* %d imagen(es)\n\n"+
		"¿Estás seguro de que quieres enviar esta reseña a Google Maps?\n"+
		"Escribe 'sí' para confirmar o 'no' para cancelar.",
		session.PlaceName, stars(session.Rating), session.ReviewText, len(session.PhotoRefs))
}

func submissionSuccessMessage(placeName string) string {
	return fmt.Sprintf("✅ *¡Reseña enviada exitosamente!*\n\n"+
		"Tu reseña para *%s* ya está publicada en Google Maps.\n"+
		"¡Gracias por compartir tu experiencia!", placeName)
}

func submissionFailureMessage(reason string) string {
	return fmt.Sprintf("❌ *Error al enviar la reseña*\n\n"+
		"Error: %s\n"+
		"Por favor, intenta de nuevo más tarde.", reason)
}
