package handlers

import (
	"github.com/jobscout/backend/internal/models"
	"gorm.io/gorm"
)

// Func-field mocks so each test overrides only what it needs.

type mockJobRepository struct {
	listJobsFunc           func(filter models.JobFilter) ([]models.Job, error)
	getJobByIDFunc         func(id uint) (*models.Job, error)
	upsertJobFunc          func(job *models.Job) error
	getSavedJobsByUserFunc func(userID uint) ([]models.Job, error)
}

func (m *mockJobRepository) ListJobs(filter models.JobFilter) ([]models.Job, error) {
	if m.listJobsFunc != nil {
		return m.listJobsFunc(filter)
	}
	return nil, nil
}

func (m *mockJobRepository) GetJobByID(id uint) (*models.Job, error) {
	if m.getJobByIDFunc != nil {
		return m.getJobByIDFunc(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJobRepository) UpsertJob(job *models.Job) error {
	if m.upsertJobFunc != nil {
		return m.upsertJobFunc(job)
	}
	return nil
}

func (m *mockJobRepository) GetSavedJobsByUser(userID uint) ([]models.Job, error) {
	if m.getSavedJobsByUserFunc != nil {
		return m.getSavedJobsByUserFunc(userID)
	}
	return nil, nil
}

type mockJobSaveRepository struct {
	saveJobFunc    func(save *models.JobSave) error
	unsaveJobFunc  func(userID, jobID uint) (bool, error)
	isJobSavedFunc func(userID, jobID uint) (bool, error)
}

func (m *mockJobSaveRepository) SaveJob(save *models.JobSave) error {
	if m.saveJobFunc != nil {
		return m.saveJobFunc(save)
	}
	return nil
}

func (m *mockJobSaveRepository) UnsaveJob(userID, jobID uint) (bool, error) {
	if m.unsaveJobFunc != nil {
		return m.unsaveJobFunc(userID, jobID)
	}
	return false, nil
}

func (m *mockJobSaveRepository) IsJobSaved(userID, jobID uint) (bool, error) {
	if m.isJobSavedFunc != nil {
		return m.isJobSavedFunc(userID, jobID)
	}
	return false, nil
}

type mockUserRepository struct {
	createUserFunc     func(user *models.User) error
	getUserByIDFunc    func(id uint) (*models.User, error)
	getUserByEmailFunc func(email string) (*models.User, error)
}

func (m *mockUserRepository) CreateUser(user *models.User) error {
	if m.createUserFunc != nil {
		return m.createUserFunc(user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFunc != nil {
		return m.getUserByIDFunc(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFunc != nil {
		return m.getUserByEmailFunc(email)
	}
	return nil, gorm.ErrRecordNotFound
}
