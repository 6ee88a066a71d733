package export

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andareed/tasview/taslog"
)

// LogInfo is the single-row header table.
type LogInfo struct {
	ID          uint   `gorm:"primaryKey"`
	ToolVersion string `gorm:"size:64"`
	BuildNumber int
	GameMod     string `gorm:"size:64"`
}

func (*LogInfo) TableName() string { return "log_info" }

// PhysicsFrameRecord is one physics frame.
type PhysicsFrameRecord struct {
	PhysicsIndex  int `gorm:"primaryKey;autoIncrement:false"`
	FrameTime     float64
	ClientState   int
	Paused        bool
	ConsolePrints string
	CommandBuffer string
	CommandFrames int
}

func (*PhysicsFrameRecord) TableName() string { return "physics_frames" }

// StateRecord is a player state flattened into columns.
type StateRecord struct {
	PosX, PosY, PosZ    float64
	VelX, VelY, VelZ    float64
	BVelX, BVelY, BVelZ float64
	OnGround            bool
	OnLadder            bool
	DuckState           int
	WaterLevel          int
}

// CommandFrameRecord is one command frame with both player states.
type CommandFrameRecord struct {
	PhysicsIndex       int `gorm:"primaryKey;autoIncrement:false"`
	CommandIndex       int `gorm:"primaryKey;autoIncrement:false"`
	Row                int `gorm:"index"`
	Msec               int
	FramebulkID        int
	Yaw, Pitch, Roll   float64
	PunchYaw           float64
	PunchPitch         float64
	PunchRoll          float64
	ForwardMove        float64
	SideMove           float64
	UpMove             float64
	Buttons            uint32
	Health             int
	Armor              int
	FrameTimeRemainder float64
	EntFriction        float64
	EntGravity         float64
	SharedSeed         uint32
	Pre                StateRecord `gorm:"embedded;embeddedPrefix:pre_"`
	Post               StateRecord `gorm:"embedded;embeddedPrefix:post_"`
}

func (*CommandFrameRecord) TableName() string { return "command_frames" }

// CollisionRecord is one collision of a command frame.
type CollisionRecord struct {
	ID                        uint `gorm:"primaryKey"`
	PhysicsIndex              int  `gorm:"index:idx_collision_frame"`
	CommandIndex              int  `gorm:"index:idx_collision_frame"`
	Entity                    int
	NormalX, NormalY, NormalZ float64
	ImpactX, ImpactY, ImpactZ float64
}

func (*CollisionRecord) TableName() string { return "collisions" }

// DamageRecord is one damage event of a physics frame.
type DamageRecord struct {
	ID           uint `gorm:"primaryKey"`
	PhysicsIndex int  `gorm:"index"`
	Amount       float64
	DirX, DirY   float64
	DirZ         float64
	DamageBits   uint32
	DamageTypes  string
}

func (*DamageRecord) TableName() string { return "damages" }

// ObjectMoveRecord is one object move of a physics frame.
type ObjectMoveRecord struct {
	ID               uint `gorm:"primaryKey"`
	PhysicsIndex     int  `gorm:"index"`
	Pull             bool
	VelX, VelY, VelZ float64
	PosX, PosY, PosZ float64
}

func (*ObjectMoveRecord) TableName() string { return "object_moves" }

// Models lists every table written by SQLite.
var Models = []any{
	&LogInfo{},
	&PhysicsFrameRecord{},
	&CommandFrameRecord{},
	&CollisionRecord{},
	&DamageRecord{},
	&ObjectMoveRecord{},
}

const batchSize = 2000

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        batchSize,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = MEMORY;",
		"PRAGMA synchronous = OFF;",
		"PRAGMA temp_store = MEMORY;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("error setting PRAGMA: %w", err)
		}
	}
	return db, nil
}

// SQLite writes log to a new database at path, replacing any existing file.
func SQLite(path string, log *taslog.Log) error {
	if log == nil {
		return errors.New("no log loaded")
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove existing database: %w", err)
	}

	db, err := OpenSQLite(path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return writeLog(tx, log)
	})
}

func writeLog(tx *gorm.DB, log *taslog.Log) error {
	info := LogInfo{ID: 1, ToolVersion: log.ToolVersion, BuildNumber: log.BuildNumber, GameMod: log.GameMod}
	if err := tx.Create(&info).Error; err != nil {
		return fmt.Errorf("write log info: %w", err)
	}

	var (
		pfs  = make([]PhysicsFrameRecord, 0, len(log.PhysicsFrames))
		cfs  []CommandFrameRecord
		cols []CollisionRecord
		dmgs []DamageRecord
		objs []ObjectMoveRecord
	)
	row := 0
	for phy := range log.PhysicsFrames {
		pf := &log.PhysicsFrames[phy]
		pfs = append(pfs, PhysicsFrameRecord{
			PhysicsIndex:  phy,
			FrameTime:     pf.FrameTime,
			ClientState:   pf.ClientState,
			Paused:        pf.Paused,
			ConsolePrints: strings.Join(pf.ConsolePrints, "\n"),
			CommandBuffer: pf.CommandBuffer,
			CommandFrames: len(pf.CommandFrames),
		})
		for _, d := range pf.Damages {
			dmgs = append(dmgs, DamageRecord{
				PhysicsIndex: phy,
				Amount:       d.Amount,
				DirX:         d.Direction[0],
				DirY:         d.Direction[1],
				DirZ:         d.Direction[2],
				DamageBits:   d.DamageBits,
				DamageTypes:  taslog.DamageTypeString(d.DamageBits),
			})
		}
		for _, o := range pf.ObjectMoves {
			objs = append(objs, ObjectMoveRecord{
				PhysicsIndex: phy,
				Pull:         o.Pull,
				VelX:         o.Velocity[0], VelY: o.Velocity[1], VelZ: o.Velocity[2],
				PosX:         o.Position[0], PosY: o.Position[1], PosZ: o.Position[2],
			})
		}
		for ci := range pf.CommandFrames {
			cf := &pf.CommandFrames[ci]
			cfs = append(cfs, commandRecord(phy, ci, row+ci, cf))
			for _, c := range cf.Collisions {
				cols = append(cols, CollisionRecord{
					PhysicsIndex: phy,
					CommandIndex: ci,
					Entity:       c.Entity,
					NormalX:      c.Normal[0], NormalY: c.Normal[1], NormalZ: c.Normal[2],
					ImpactX:      c.ImpactVelocity[0], ImpactY: c.ImpactVelocity[1], ImpactZ: c.ImpactVelocity[2],
				})
			}
		}
		row += max(1, len(pf.CommandFrames))
	}

	if err := createAll(tx, pfs); err != nil {
		return fmt.Errorf("write physics frames: %w", err)
	}
	if err := createAll(tx, cfs); err != nil {
		return fmt.Errorf("write command frames: %w", err)
	}
	if err := createAll(tx, cols); err != nil {
		return fmt.Errorf("write collisions: %w", err)
	}
	if err := createAll(tx, dmgs); err != nil {
		return fmt.Errorf("write damages: %w", err)
	}
	if err := createAll(tx, objs); err != nil {
		return fmt.Errorf("write object moves: %w", err)
	}
	return nil
}

func createAll[T any](tx *gorm.DB, records []T) error {
	if len(records) == 0 {
		return nil
	}
	return tx.CreateInBatches(records, batchSize).Error
}

func stateRecord(st *taslog.PlayerState) StateRecord {
	return StateRecord{
		PosX: st.Position[0], PosY: st.Position[1], PosZ: st.Position[2],
		VelX: st.Velocity[0], VelY: st.Velocity[1], VelZ: st.Velocity[2],
		BVelX: st.BaseVelocity[0], BVelY: st.BaseVelocity[1], BVelZ: st.BaseVelocity[2],
		OnGround:   st.OnGround,
		OnLadder:   st.OnLadder,
		DuckState:  int(st.DuckState),
		WaterLevel: st.WaterLevel,
	}
}

func commandRecord(phy, ci, row int, cf *taslog.CommandFrame) CommandFrameRecord {
	return CommandFrameRecord{
		PhysicsIndex:       phy,
		CommandIndex:       ci,
		Row:                row,
		Msec:               cf.Msec,
		FramebulkID:        cf.FramebulkID,
		Yaw:                cf.Viewangles[0],
		Pitch:              cf.Viewangles[1],
		Roll:               cf.Viewangles[2],
		PunchYaw:           cf.Punchangles[0],
		PunchPitch:         cf.Punchangles[1],
		PunchRoll:          cf.Punchangles[2],
		ForwardMove:        cf.FSU[0],
		SideMove:           cf.FSU[1],
		UpMove:             cf.FSU[2],
		Buttons:            cf.Buttons,
		Health:             cf.Health,
		Armor:              cf.Armor,
		FrameTimeRemainder: cf.FrameTimeRemainder,
		EntFriction:        cf.EntFriction,
		EntGravity:         cf.EntGravity,
		SharedSeed:         cf.SharedSeed,
		Pre:                stateRecord(&cf.PrePM),
		Post:               stateRecord(&cf.PostPM),
	}
}
