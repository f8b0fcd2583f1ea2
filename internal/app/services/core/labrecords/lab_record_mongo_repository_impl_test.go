package labrecords

import (
	"context"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/labreport"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockedRepository(mt *mtest.T) *LabRecordMongoRepository {
	return &LabRecordMongoRepository{
		Collections: map[labreport.ReportType]*mongo.Collection{
			labreport.BloodPressure: mt.Coll,
		},
	}
}

func newBloodPressureRecord() *models.LabRecord {
	return models.NewLabRecordFromCandidate(&labreport.Candidate{
		ReportType: labreport.BloodPressure,
		Fields:     labreport.FieldMap{labreport.FieldSystolic: 128, labreport.FieldDiastolic: 82, labreport.FieldPulse: 70},
		Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}, "p1", "d1", constvars.RecordSourceManual)
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestLabRecordMongoRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("Malformed Id Is Not Found Without Query", func(mt *mtest.T) {
		record, err := newMockedRepository(mt).FindByID(ctx, labreport.BloodPressure, "zzz")
		assert.NoError(mt, err)
		assert.Nil(mt, record)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("No Document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		record, err := newMockedRepository(mt).FindByID(ctx, labreport.BloodPressure, primitive.NewObjectID().Hex())
		assert.NoError(mt, err)
		assert.Nil(mt, record)
	})

	mt.Run("Found", func(mt *mtest.T) {
		objectID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: objectID},
			{Key: "patientId", Value: "p1"},
			{Key: "doctorId", Value: "d1"},
			{Key: "reportType", Value: "BloodPressure"},
			{Key: "fields", Value: bson.D{{Key: "systolic", Value: int32(128)}}},
			{Key: "date", Value: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
			{Key: "commented", Value: false},
		}))

		record, err := newMockedRepository(mt).FindByID(ctx, labreport.BloodPressure, objectID.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, record)
		assert.Equal(mt, objectID.Hex(), record.ID)
		assert.Equal(mt, "p1", record.PatientID)
		assert.Equal(mt, labreport.BloodPressure, record.ReportType)
	})

	mt.Run("Unknown Report Type", func(mt *mtest.T) {
		_, err := newMockedRepository(mt).FindByID(ctx, labreport.FBC, primitive.NewObjectID().Hex())
		assert.Error(mt, err)
	})
}

func TestLabRecordMongoRepository_UpdateDoctorComment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("Malformed Id Issues No Update", func(mt *mtest.T) {
		err := newMockedRepository(mt).UpdateDoctorComment(ctx, labreport.BloodPressure, "zzz", "Looks fine")
		assert.True(mt, exceptions.HasCode(err, constvars.ErrCodeRecordNotFound))
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("No Matching Record", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := newMockedRepository(mt).UpdateDoctorComment(ctx, labreport.BloodPressure, primitive.NewObjectID().Hex(), "Looks fine")
		assert.True(mt, exceptions.HasCode(err, constvars.ErrCodeRecordNotFound))
	})

	mt.Run("Sets Comment And Flag", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := newMockedRepository(mt).UpdateDoctorComment(ctx, labreport.BloodPressure, primitive.NewObjectID().Hex(), "Looks fine")
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)

		set := started.Command.Lookup("updates", "0", "u", "$set").Document()
		assert.Equal(mt, "Looks fine", set.Lookup("doctorComment").StringValue())
		assert.True(mt, set.Lookup("commented").Boolean())
	})
}

func TestLabRecordMongoRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Returns Generated Hex Id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		record := newBloodPressureRecord()
		recordID, err := newMockedRepository(mt).Create(context.Background(), record)
		require.NoError(mt, err)

		_, err = primitive.ObjectIDFromHex(recordID)
		assert.NoError(mt, err)
	})

	mt.Run("Write Error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		_, err := newMockedRepository(mt).Create(context.Background(), newBloodPressureRecord())
		assert.True(mt, exceptions.HasCode(err, constvars.ErrCodeStoreUnavailable))
	})
}
