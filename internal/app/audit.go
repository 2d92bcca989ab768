package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shopquanao/storefront/internal/catalog"
	"github.com/shopquanao/storefront/internal/domain"
	"github.com/shopquanao/storefront/internal/order"
	"github.com/shopquanao/storefront/pkg/common"
)

// initAuditSubscribers wires the event bus topics into the audit log
// table. Subscriptions are synchronous, so a mutation's audit row is
// written before its HTTP response goes out.
func (a *Application) initAuditSubscribers() {
	err := a.bus.Subscribe(catalog.TopicCatalogChanged, func(action string, productID int64) {
		a.writeAudit("catalog."+action, fmt.Sprintf("product:%d", productID), "")
	})
	if err != nil {
		zap.L().Error("failed to subscribe catalog audit", zap.Error(err))
	}

	err = a.bus.Subscribe(order.TopicOrderCreated, func(orderID int64) {
		a.writeAudit("order.create", fmt.Sprintf("order:%d", orderID), "")
	})
	if err != nil {
		zap.L().Error("failed to subscribe order audit", zap.Error(err))
	}
}

func (a *Application) writeAudit(action, target, detail string) {
	log := domain.AuditLog{
		ID:      common.UUIDint64(),
		Actor:   "api",
		Action:  action,
		Target:  target,
		Detail:  detail,
		OptTime: time.Now(),
	}
	if err := a.gormDB.Create(&log).Error; err != nil {
		zap.L().Warn("failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}
