package labrecords

import (
	"context"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/labreport"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var collectionNames = map[labreport.ReportType]string{
	labreport.BloodPressure: constvars.MongoCollectionBloodPressureRecords,
	labreport.BloodSugar:    constvars.MongoCollectionBloodSugarReports,
	labreport.LipidProfile:  constvars.MongoCollectionLipidProfileReports,
	labreport.FBC:           constvars.MongoCollectionFBCReports,
}

// LabRecordMongoRepository keeps each report type in its own collection.
type LabRecordMongoRepository struct {
	Collections map[labreport.ReportType]*mongo.Collection
}

func NewLabRecordMongoRepository(db *mongo.Database) contracts.LabRecordRepository {
	collections := make(map[labreport.ReportType]*mongo.Collection, len(collectionNames))
	for reportType, name := range collectionNames {
		collections[reportType] = db.Collection(name)
	}
	return &LabRecordMongoRepository{
		Collections: collections,
	}
}

func (repo *LabRecordMongoRepository) collection(reportType labreport.ReportType) (*mongo.Collection, error) {
	collection, ok := repo.Collections[reportType]
	if !ok {
		return nil, exceptions.ErrUnknownReportType(reportType.String())
	}
	return collection, nil
}

func (repo *LabRecordMongoRepository) Create(ctx context.Context, record *models.LabRecord) (string, error) {
	collection, err := repo.collection(record.ReportType)
	if err != nil {
		return "", err
	}

	record.ID = ""
	result, err := collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *LabRecordMongoRepository) FindByID(ctx context.Context, reportType labreport.ReportType, recordID string) (*models.LabRecord, error) {
	collection, err := repo.collection(reportType)
	if err != nil {
		return nil, err
	}

	objectID, ok := models.ObjectIDFromHex(recordID)
	if !ok {
		return nil, nil
	}

	var record models.LabRecord
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (repo *LabRecordMongoRepository) FindByPatientID(ctx context.Context, reportType labreport.ReportType, patientID string) ([]models.LabRecord, error) {
	return repo.findBy(ctx, reportType, bson.M{"patientId": patientID})
}

func (repo *LabRecordMongoRepository) FindByDoctorID(ctx context.Context, reportType labreport.ReportType, doctorID string) ([]models.LabRecord, error) {
	return repo.findBy(ctx, reportType, bson.M{"doctorId": doctorID})
}

func (repo *LabRecordMongoRepository) findBy(ctx context.Context, reportType labreport.ReportType, filter bson.M) ([]models.LabRecord, error) {
	collection, err := repo.collection(reportType)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	records := []models.LabRecord{}
	err = cursor.All(ctx, &records)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}

// UpdateDoctorComment only ever sets commented to true.
func (repo *LabRecordMongoRepository) UpdateDoctorComment(ctx context.Context, reportType labreport.ReportType, recordID, comment string) error {
	collection, err := repo.collection(reportType)
	if err != nil {
		return err
	}

	objectID, ok := models.ObjectIDFromHex(recordID)
	if !ok {
		return exceptions.ErrRecordNotFound(reportType.String(), recordID)
	}

	update := bson.M{
		"$set": bson.M{
			"doctorComment": comment,
			"commented":     true,
			"updatedAt":     time.Now(),
		},
	}
	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrRecordNotFound(reportType.String(), recordID)
	}
	return nil
}
