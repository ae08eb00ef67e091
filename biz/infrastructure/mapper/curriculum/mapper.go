package curriculum

import (
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/config"
	"github.com/xh-polaris/virtual-classroom/biz/infrastructure/consts"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

const (
	CollectionName = "curriculum"
)

type IMongoMapper interface {
	FindAll(ctx context.Context) ([]*Topic, error)
}

var _ IMongoMapper = (*MongoMapper)(nil)

type MongoMapper struct {
	conn *mon.Model
}

// NewMongoMapper 未配置 Mongo 时返回nil, 只使用内置目录
func NewMongoMapper(config *config.Config) *MongoMapper {
	if config.Mongo.URL == "" {
		return nil
	}
	conn := mon.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName)
	return &MongoMapper{conn: conn}
}

// FindAll 按学科、年级、组内顺序排序
func (m *MongoMapper) FindAll(ctx context.Context) ([]*Topic, error) {
	data := make([]*Topic, 0)
	err := m.conn.Find(ctx, &data, bson.M{}, &options.FindOptions{
		Sort: bson.D{{Key: consts.Track, Value: 1}, {Key: consts.YearGroup, Value: 1}, {Key: consts.Order, Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
