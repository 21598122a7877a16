package pages

import (
	"github.com/ConserveLee/zoot/app/appctx"
	"github.com/ConserveLee/zoot/app/route"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// DashboardPanel shows the active route and the run log
type DashboardPanel struct {
	widget.BaseWidget

	routeLabel *widget.Label
	logList    *widget.List
	logData    binding.StringList
	clearBtn   *widget.Button
	content    fyne.CanvasObject

	sub *route.Subscription
}

func NewDashboardPanel(ctx *appctx.Context) *DashboardPanel {
	d := &DashboardPanel{}
	d.ExtendBaseWidget(d)

	routeData := binding.NewString()
	routeData.Set(routeText(ctx.CurrentRoute()))
	d.sub = ctx.RouteReader().Subscribe(func(r route.Route) {
		routeData.Set(routeText(r))
	})

	d.routeLabel = widget.NewLabelWithData(routeData)
	d.routeLabel.TextStyle = fyne.TextStyle{Bold: true}

	d.logData = ctx.Logger.Data()
	if d.logData == nil {
		d.logData = binding.NewStringList()
	}
	d.logList = widget.NewListWithData(
		d.logData,
		func() fyne.CanvasObject { return widget.NewLabel("Log entry template") },
		func(i binding.DataItem, o fyne.CanvasObject) { o.(*widget.Label).Bind(i.(binding.String)) },
	)

	// Auto-scroll. ScrollTo is a no-op until the list has been rendered.
	d.logData.AddListener(binding.NewDataListener(func() {
		if n := d.logData.Length(); n > 0 {
			d.logList.ScrollTo(n - 1)
		}
	}))

	d.clearBtn = widget.NewButton("清空日志", func() {
		d.logData.Set(nil)
	})

	header := container.NewVBox(
		d.routeLabel,
		widget.NewSeparator(),
		container.NewHBox(widget.NewLabel("运行日志:"), d.clearBtn),
	)
	d.content = container.NewBorder(header, nil, nil, nil, d.logList)
	return d
}

func (d *DashboardPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.content)
}

// Close stops following the route
func (d *DashboardPanel) Close() {
	d.sub.Cancel()
}

func routeText(r route.Route) string {
	return "当前页面: " + r.ID()
}
