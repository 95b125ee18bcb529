// Package wire provides lazy dependency injection for the application.
// Services and repositories are created on first use and shared for the
// life of the process.
package wire

import (
	"log"
	"sync"

	"github.com/example/skyops/internal/adapters/sqlite"
	"github.com/example/skyops/internal/app"
	"github.com/example/skyops/internal/db"
	"github.com/example/skyops/internal/ports/primary"
)

var (
	once sync.Once

	rosterService     primary.RosterService
	fleetService      primary.FleetService
	missionService    primary.MissionService
	assignmentService primary.AssignmentService
	conflictService   primary.ConflictService
	replanService     primary.ReplanService
	activityService   primary.ActivityService
	transferService   primary.TransferService
)

// RosterService returns the singleton RosterService instance.
func RosterService() primary.RosterService {
	once.Do(initServices)
	return rosterService
}

// FleetService returns the singleton FleetService instance.
func FleetService() primary.FleetService {
	once.Do(initServices)
	return fleetService
}

// MissionService returns the singleton MissionService instance.
func MissionService() primary.MissionService {
	once.Do(initServices)
	return missionService
}

// AssignmentService returns the singleton AssignmentService instance.
func AssignmentService() primary.AssignmentService {
	once.Do(initServices)
	return assignmentService
}

// ConflictService returns the singleton ConflictService instance.
func ConflictService() primary.ConflictService {
	once.Do(initServices)
	return conflictService
}

// ReplanService returns the singleton ReplanService instance.
func ReplanService() primary.ReplanService {
	once.Do(initServices)
	return replanService
}

// ActivityService returns the singleton ActivityService instance.
func ActivityService() primary.ActivityService {
	once.Do(initServices)
	return activityService
}

// TransferService returns the singleton TransferService instance.
func TransferService() primary.TransferService {
	once.Do(initServices)
	return transferService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with the shared DB handle
	pilotRepo := sqlite.NewPilotRepository(database)
	droneRepo := sqlite.NewDroneRepository(database)
	missionRepo := sqlite.NewMissionRepository(database)
	activityRepo := sqlite.NewActivityLogRepository(database)

	// Services (primary port implementations)
	rosterService = app.NewRosterService(pilotRepo, activityRepo)
	fleetService = app.NewFleetService(droneRepo, activityRepo)
	missionService = app.NewMissionService(missionRepo, pilotRepo, droneRepo, activityRepo)
	assignmentService = app.NewAssignmentService(pilotRepo, droneRepo, missionRepo, activityRepo)
	conflictService = app.NewConflictService(pilotRepo, droneRepo, missionRepo)
	replanService = app.NewReplanService(pilotRepo, droneRepo, missionRepo)
	activityService = app.NewActivityService(activityRepo)
	transferService = app.NewTransferService(pilotRepo, droneRepo, missionRepo, activityRepo)
}
