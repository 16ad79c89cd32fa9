package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"fundi/models"
	"fundi/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateTx inserts the booking and updates the owning worker's
// waitingList/available pair in a single multi-document transaction. The
// worker counter is re-read inside the transaction so concurrent bookings
// against the same worker cannot lose updates.
func (repo *MongoBookingRepo) CreateTx(ctx context.Context, booking *models.Booking) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		var worker models.Worker
		filter := bson.M{"id": booking.WorkerID}
		if err := repo.workerColl.FindOne(sc, filter).Decode(&worker); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return utils.NewNotFoundError("worker", booking.WorkerID)
			}
			return fmt.Errorf("read worker failed: %w", err)
		}

		waitingList, available := models.OnBookingCreated(worker.WaitingList)
		update := bson.M{"$set": bson.M{
			"waitingList": waitingList,
			"available":   available,
		}}
		if _, err := repo.workerColl.UpdateOne(sc, filter, update); err != nil {
			return fmt.Errorf("update worker availability failed: %w", err)
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := runTxn(ctx, sess, txnFn); err != nil {
		if utils.IsNotFound(err) {
			return err
		}
		return &utils.ConflictError{Op: "create booking", Err: err}
	}
	return nil
}

// DeleteTx removes the booking and releases its slot on the worker's waiting
// list in a single transaction. Deleting an absent booking is not an error.
func (repo *MongoBookingRepo) DeleteTx(ctx context.Context, id string) (bool, error) {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return false, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	found := false
	txnFn := func(sc mongo.SessionContext) error {
		var booking models.Booking
		if err := repo.bookingColl.FindOne(sc, bson.M{"id": id}).Decode(&booking); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil
			}
			return fmt.Errorf("read booking failed: %w", err)
		}
		found = true

		var worker models.Worker
		workerFilter := bson.M{"id": booking.WorkerID}
		if err := repo.workerColl.FindOne(sc, workerFilter).Decode(&worker); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// Data-integrity violation: the booking references a worker
				// that no longer exists.
				return utils.NewNotFoundError("worker", booking.WorkerID)
			}
			return fmt.Errorf("read worker failed: %w", err)
		}

		waitingList, available := models.OnBookingDeleted(worker.WaitingList)
		update := bson.M{"$set": bson.M{
			"waitingList": waitingList,
			"available":   available,
		}}
		if _, err := repo.workerColl.UpdateOne(sc, workerFilter, update); err != nil {
			return fmt.Errorf("update worker availability failed: %w", err)
		}

		if _, err := repo.bookingColl.DeleteOne(sc, bson.M{"id": id}); err != nil {
			return fmt.Errorf("delete booking failed: %w", err)
		}
		return nil
	}

	if err := runTxn(ctx, sess, txnFn); err != nil {
		if utils.IsNotFound(err) {
			return false, err
		}
		return false, &utils.ConflictError{Op: "delete booking", Err: err}
	}
	return found, nil
}

// runTxn wraps a function in start/commit/abort against the given session.
func runTxn(ctx context.Context, sess mongo.Session, fn func(mongo.SessionContext) error) error {
	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
