package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scholaris/scholaris-backend/internal/config"
	"github.com/scholaris/scholaris-backend/internal/database"
	"github.com/scholaris/scholaris-backend/internal/logger"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
	"github.com/scholaris/scholaris-backend/internal/service"
)

// Seeds a demo school: one academic year, two classes, four subjects,
// ten students with accounts, a tuition fee schedule and sample
// results for the first term.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	userRepo := repository.NewUserRepository(pool)
	yearRepo := repository.NewAcademicYearRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	parentRepo := repository.NewParentRepository(pool)
	resultRepo := repository.NewResultRepository(pool)
	feeStructureRepo := repository.NewFeeStructureRepository(pool)

	authService := service.NewAuthService(cfg, rdb, userRepo, studentRepo, staffRepo, parentRepo)
	resultService := service.NewResultService(resultRepo, studentRepo, classRepo, yearRepo, log)

	fmt.Println("=== Seeding Demo School ===")

	// Academic year
	year := &model.AcademicYear{
		Name:      "2025-2026",
		StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
	if err := yearRepo.Create(ctx, year); err != nil {
		log.Fatal().Err(err).Msg("Failed to create academic year")
	}
	fmt.Printf("Created academic year %s (ID %d)\n", year.Name, year.ID)

	// Classes
	var classIDs []int
	for _, section := range []string{"A", "B"} {
		class := &model.Class{
			Name:           "Grade 7" + section,
			Grade:          7,
			Section:        section,
			AcademicYearID: year.ID,
		}
		if err := classRepo.Create(ctx, class); err != nil {
			log.Fatal().Err(err).Msg("Failed to create class")
		}
		classIDs = append(classIDs, class.ID)
		fmt.Printf("Created class %s (ID %d)\n", class.Name, class.ID)
	}

	// Subjects
	subjects := []model.Subject{
		{Name: "Mathematics", Code: "MATH"},
		{Name: "English", Code: "ENG"},
		{Name: "Science", Code: "SCI"},
		{Name: "Social Studies", Code: "SOC"},
	}
	for i := range subjects {
		if err := subjectRepo.Create(ctx, &subjects[i]); err != nil {
			log.Fatal().Err(err).Msg("Failed to create subject")
		}
	}
	fmt.Printf("Created %d subjects\n", len(subjects))

	// Tuition schedule for grade 7
	tuition := &model.FeeStructure{
		AcademicYearID: year.ID,
		Grade:          7,
		FeeType:        model.FeeTypeTuition,
		Amount:         decimal.NewFromInt(1500),
		Description:    "Grade 7 tuition per term",
	}
	if err := feeStructureRepo.Create(ctx, tuition); err != nil {
		log.Fatal().Err(err).Msg("Failed to create fee structure")
	}
	fmt.Println("Created tuition schedule for grade 7")

	// Students with accounts
	hash, err := authService.HashPassword("student123")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	firstNames := []string{"Amina", "Brian", "Chiara", "Daniel", "Esther", "Farid", "Grace", "Hassan", "Irene", "Joseph"}
	var students []*model.Student
	for i, name := range firstNames {
		classID := classIDs[i%len(classIDs)]
		user := &model.User{
			Username:     fmt.Sprintf("student%02d", i+1),
			Email:        fmt.Sprintf("student%02d@demo.school", i+1),
			FirstName:    name,
			LastName:     "Demo",
			Role:         model.RoleStudent,
			PasswordHash: hash,
		}
		student := &model.Student{
			StudentID:      fmt.Sprintf("STU-%04d", i+1),
			AdmissionDate:  year.StartDate,
			CurrentClassID: &classID,
		}
		if err := studentRepo.Create(ctx, user, student); err != nil {
			log.Fatal().Err(err).Msg("Failed to create student")
		}
		students = append(students, student)
	}
	fmt.Printf("Created %d students\n", len(students))

	// First-term results across all subjects, spread over the score range
	for i, student := range students {
		for j, subject := range subjects {
			base := float64((i*3 + j*2) % 10)
			req := model.RecordResultRequest{
				StudentID:      student.ID,
				SubjectID:      subject.ID,
				AcademicYearID: year.ID,
				Term:           model.TermFirst,
				CA1Score:       base,
				CA2Score:       9 - base*0.5,
				CA3Score:       base*0.8 + 1,
				CA4Score:       7,
				ExamScore:      30 + base*2.5,
			}
			if _, err := resultService.Record(ctx, req, nil); err != nil {
				log.Fatal().Err(err).Msg("Failed to record result")
			}
		}
	}
	fmt.Printf("Recorded first-term results for %d students\n", len(students))

	fmt.Println("Demo seed complete")
}
