package contracts

import (
	"context"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAllPatients(ctx context.Context) ([]models.Patient, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patientModel *models.Patient) (patientID string, err error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
}
