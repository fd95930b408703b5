package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"patronpoint/internal/domain/entity"
)

func report(reason string, points int, ts time.Time) *entity.Report {
	reportType := entity.ReportTypePositive
	if points < 0 {
		reportType = entity.ReportTypeNegative
	}
	return &entity.Report{
		BusinessID:    "biz-1",
		CustomerPhone: "5551234567",
		ReportType:    reportType,
		Reason:        reason,
		Points:        points,
		Timestamp:     ts,
	}
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil)

	assert.Equal(t, BaselineScore, summary.Score)
	assert.Empty(t, summary.Breakdown)
	assert.Nil(t, summary.MostRecent)
	assert.True(t, summary.NoHistory)
	assert.Zero(t, summary.PositiveCount)
	assert.Zero(t, summary.NegativeCount)
}

func TestAggregateSingleNoShow(t *testing.T) {
	now := time.Now()
	summary := Aggregate([]*entity.Report{report("noShow", -18, now)})

	assert.Equal(t, 682, summary.Score)
	assert.Equal(t, map[string]int{"noShow": 1}, summary.Breakdown)
	assert.Equal(t, 1, summary.NegativeCount)
	assert.Equal(t, 0, summary.PositiveCount)
	assert.Equal(t, 1, summary.TotalReports)
	assert.False(t, summary.NoHistory)
	if assert.NotNil(t, summary.MostRecent) {
		assert.True(t, summary.MostRecent.Equal(now))
	}
}

func TestAggregateTwoBusinessesTipsWell(t *testing.T) {
	now := time.Now()
	reports := []*entity.Report{
		report("tipsWell", 12, now.Add(-time.Hour)),
		report("tipsWell", 12, now),
	}
	reports[1].BusinessID = "biz-2"

	summary := Aggregate(reports)

	assert.Equal(t, 724, summary.Score)
	assert.Equal(t, map[string]int{"tipsWell": 2}, summary.Breakdown)
	assert.Equal(t, 2, summary.PositiveCount)
	if assert.NotNil(t, summary.MostRecent) {
		assert.True(t, summary.MostRecent.Equal(now))
	}
}

func TestAggregateClampsToScale(t *testing.T) {
	now := time.Now()

	var negatives []*entity.Report
	for i := 0; i < 50; i++ {
		negatives = append(negatives, report("didNotPay", -21, now))
	}
	assert.Equal(t, MinScore, Aggregate(negatives).Score)

	var positives []*entity.Report
	for i := 0; i < 50; i++ {
		positives = append(positives, report("gaveReferral", 21, now))
	}
	assert.Equal(t, MaxScore, Aggregate(positives).Score)
}

func TestAggregateOrderIndependent(t *testing.T) {
	now := time.Now()
	forward := []*entity.Report{
		report("tipsWell", 12, now.Add(-2*time.Hour)),
		report("noShow", -18, now),
		report("goodConversation", 5, now.Add(-time.Hour)),
	}
	reversed := []*entity.Report{forward[2], forward[1], forward[0]}

	a := Aggregate(forward)
	b := Aggregate(reversed)

	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Breakdown, b.Breakdown)
	assert.True(t, a.MostRecent.Equal(*b.MostRecent))
	assert.True(t, a.MostRecent.Equal(now))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandHighRisk, BandFor(0))
	assert.Equal(t, BandHighRisk, BandFor(399))
	assert.Equal(t, BandModerateRisk, BandFor(400))
	assert.Equal(t, BandModerateRisk, BandFor(650))
	assert.Equal(t, BandGood, BandFor(651))
	assert.Equal(t, BandGood, BandFor(799))
	assert.Equal(t, BandExcellent, BandFor(800))
	assert.Equal(t, BandExcellent, BandFor(1000))
}
