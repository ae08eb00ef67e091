package curriculum

import "go.mongodb.org/mongo-driver/bson/primitive"

// Topic 课程目录中的一个课题, 按 (track, year_group) 分组, order 为组内顺序
type Topic struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Track       string             `bson:"track" json:"track"`
	YearGroup   string             `bson:"year_group" json:"year_group"`
	Order       int                `bson:"order" json:"order"`
	TopicId     string             `bson:"topic_id" json:"topic_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Sections    []string           `bson:"sections" json:"sections"`
}
