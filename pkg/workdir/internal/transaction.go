package internal

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperation is returned when an operation is malformed
	ErrInvalidOperation = errors.New("invalid operation")
)

// TransactionResult contains the outcome of an atomic transaction
type TransactionResult struct {
	Success           bool
	OperationsApplied int
	TotalOperations   int
	Err               error
}

func success(opsApplied, totalOps int) TransactionResult {
	return TransactionResult{Success: true, OperationsApplied: opsApplied, TotalOperations: totalOps}
}

func failure(opsApplied, totalOps int, err error) TransactionResult {
	return TransactionResult{OperationsApplied: opsApplied, TotalOperations: totalOps, Err: err}
}

// Manager applies operation lists with all-or-nothing semantics: when one
// operation fails, everything already applied is restored from backups.
type Manager struct {
	fileOps   *FileOps
	validator *Validator
}

// NewManager creates a new transaction manager
func NewManager(fileOps *FileOps, validator *Validator) *Manager {
	return &Manager{fileOps: fileOps, validator: validator}
}

// ExecuteAtomically executes ops in order as a single transaction.
func (m *Manager) ExecuteAtomically(ctx context.Context, ops []Operation) TransactionResult {
	if len(ops) == 0 {
		return success(0, 0)
	}

	if err := m.validator.ValidateOperations(ops); err != nil {
		return failure(0, len(ops), err)
	}

	backups, err := m.createBackups(ops)
	if err != nil {
		return failure(0, len(ops), fmt.Errorf("create backups: %w", err))
	}

	applied := 0
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			m.rollback(backups[:i])
			return failure(applied, len(ops), err)
		}

		if err := m.fileOps.ApplyOperation(op); err != nil {
			rollbackOK := m.rollback(backups[:i])

			errMsg := fmt.Sprintf("operation failed (failed at: %s %s)", op.Action, op.Path)
			if applied > 0 {
				errMsg += fmt.Sprintf(" (%d operations completed before failure)", applied)
			}
			if !rollbackOK {
				errMsg += " (WARNING: rollback failed, working directory may be in inconsistent state)"
			}
			return failure(applied, len(ops), fmt.Errorf("%s: %w", errMsg, err))
		}
		applied++
	}

	return success(applied, len(ops))
}

// createBackups records the pre-transaction state of every touched path,
// one backup per operation.
func (m *Manager) createBackups(ops []Operation) ([]*Backup, error) {
	backups := make([]*Backup, 0, len(ops))
	for _, op := range ops {
		backup, err := m.fileOps.CreateBackup(op.Path)
		if err != nil {
			return nil, fmt.Errorf("backup %s: %w", op.Path, err)
		}
		backups = append(backups, backup)
	}
	return backups, nil
}

// rollback restores backups in reverse order
func (m *Manager) rollback(backups []*Backup) bool {
	ok := true
	for i := len(backups) - 1; i >= 0; i-- {
		if err := m.fileOps.RestoreBackup(backups[i]); err != nil {
			ok = false
		}
	}
	return ok
}

func invalidOperation(i int, format string, args ...any) error {
	return fmt.Errorf("%w: operation %d "+format, append([]any{ErrInvalidOperation, i}, args...)...)
}
