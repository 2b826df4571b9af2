package routers

import (
	"curaflow-service/internal/app/delivery/http/controllers"
	"curaflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRouter(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *controllers.PatientController,
	questionnaireController *controllers.QuestionnaireController,
) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.FindAllPatients)
	router.Get("/{patient_id}", patientController.FindPatientByID)
	router.Get("/{patient_id}/questionnaires", questionnaireController.FindQuestionnairesByPatientID)
}
