package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-frontoffice-backend/internal/model"
)

func (s *gormStore) CreateTask(ctx context.Context, t *model.HousekeepingTask) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.First(&room, t.RoomID).Error; err != nil {
			return notFound(err)
		}
		if t.Status == "" {
			t.Status = model.TaskPending
		}
		if err := tx.Omit("Room").Create(t).Error; err != nil {
			return fmt.Errorf("failed to create task for room %d: %w", t.RoomID, err)
		}
		if t.Kind == model.TaskMaintenance {
			if err := tx.Model(&room).Update("status", model.RoomMaintenance).Error; err != nil {
				return err
			}
		}
		t.Room = room
		return nil
	})
}

func (s *gormStore) ListTasks(ctx context.Context, f TaskFilter) ([]model.HousekeepingTask, error) {
	q := s.db.WithContext(ctx).Model(&model.HousekeepingTask{}).Preload("Room")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Assignee != "" {
		q = q.Where("assignee = ?", f.Assignee)
	}
	if f.RoomID != 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}

	var tasks []model.HousekeepingTask
	if err := q.Order("priority DESC, id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask applies u. Finishing a cleaning or maintenance task releases the room.
func (s *gormStore) UpdateTask(ctx context.Context, id uint, u TaskUpdate, now time.Time) (model.HousekeepingTask, error) {
	var task model.HousekeepingTask
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			return notFound(err)
		}
		if task.Status == model.TaskDone {
			return fmt.Errorf("%w: task %d is already done", ErrInvalidTransition, id)
		}

		updates := map[string]any{}
		if u.Assignee != nil {
			updates["assignee"] = *u.Assignee
		}
		if u.Priority != nil {
			updates["priority"] = *u.Priority
		}
		if u.Notes != nil {
			updates["notes"] = *u.Notes
		}
		if u.Status != nil {
			updates["status"] = *u.Status
			if *u.Status == model.TaskDone {
				updates["completed_at"] = now
			}
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update task %d: %w", id, err)
		}

		if u.Status != nil && *u.Status == model.TaskDone &&
			(task.Kind == model.TaskCleaning || task.Kind == model.TaskMaintenance) {
			release := []string{model.RoomCleaning, model.RoomMaintenance}
			if err := tx.Model(&model.Room{}).
				Where("id = ? AND status IN ?", task.RoomID, release).
				Update("status", model.RoomAvailable).Error; err != nil {
				return fmt.Errorf("failed to release room %d: %w", task.RoomID, err)
			}
		}
		return nil
	})
	if err != nil {
		return model.HousekeepingTask{}, err
	}

	if err := s.db.WithContext(ctx).Preload("Room").First(&task, id).Error; err != nil {
		return model.HousekeepingTask{}, notFound(err)
	}
	return task, nil
}
