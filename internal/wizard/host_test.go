package wizard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/template-wizard/internal/catalog"
	"github.com/conn-castle/template-wizard/internal/wizard"
	"github.com/conn-castle/template-wizard/internal/wizard/mocks"
)

type mockedWizard struct {
	ctrl     *wizard.Controller
	host     *mocks.MockHost
	composer *mocks.MockComposer
	setup    *mocks.MockSetupInitializer
	observer *mocks.MockObserver
	catalog  *catalog.Catalog
}

func newMockedWizard(t *testing.T) *mockedWizard {
	t.Helper()
	mc := gomock.NewController(t)
	cat, err := catalog.LoadDefault()
	require.NoError(t, err)

	m := &mockedWizard{
		host:     mocks.NewMockHost(mc),
		composer: mocks.NewMockComposer(mc),
		setup:    mocks.NewMockSetupInitializer(mc),
		observer: mocks.NewMockObserver(mc),
		catalog:  cat,
	}
	m.ctrl, err = wizard.New(wizard.Options{
		Host:      m.host,
		Composer:  m.composer,
		Setup:     m.setup,
		Observers: []wizard.Observer{m.observer},
	})
	require.NoError(t, err)
	return m
}

func (m *mockedWizard) catalogSetup() {
	m.setup.EXPECT().InitializeSetup(gomock.Any()).DoAndReturn(m.catalog.InitializeSetup).Times(1)
}

func (m *mockedWizard) realComposer() {
	m.composer.EXPECT().Compose(gomock.Any(), gomock.Any()).DoAndReturn(catalog.NewComposer(m.catalog).Compose).AnyTimes()
}

func TestControllerDrivesHostInOrder(t *testing.T) {
	m := newMockedWizard(t)
	m.catalogSetup()
	m.realComposer()
	m.observer.EXPECT().Transitioned(gomock.Any(), gomock.Any()).Times(3)
	m.observer.EXPECT().LicensesChanged(gomock.Any()).Times(1)

	gomock.InOrder(
		m.host.EXPECT().Navigate(wizard.StepTemplates),
		m.host.EXPECT().Navigate(wizard.StepSummary),
		m.host.EXPECT().Close(gomock.Not(gomock.Nil()), true),
	)

	ctx := context.Background()
	_, err := m.ctrl.AwaitSetup(ctx)
	require.NoError(t, err)
	require.NoError(t, m.ctrl.SetSetup("Blank", "MVVMBasic"))
	require.NoError(t, m.ctrl.Next(ctx))
	require.NoError(t, m.ctrl.AddPage(ctx, "Chart", "page.chart"))
	require.NoError(t, m.ctrl.Next(ctx))

	result, err := m.ctrl.Finish(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Blank", result.ProjectType())
	assert.Equal(t, wizard.StepFinished, m.ctrl.Step())
}

func TestControllerComposeFailureStaysOnTemplates(t *testing.T) {
	m := newMockedWizard(t)
	m.catalogSetup()
	m.composer.EXPECT().Compose(gomock.Any(), gomock.Any()).Return(nil, errors.New("template store offline"))
	m.host.EXPECT().Navigate(wizard.StepTemplates).Times(1)
	m.observer.EXPECT().Transitioned(wizard.StepProjectSetup, wizard.StepTemplates)
	m.observer.EXPECT().StatusChanged(gomock.Any()).Do(func(status wizard.Status) {
		assert.Equal(t, wizard.StatusError, status.Kind)
		assert.Contains(t, status.Message, "template store offline")
	})

	ctx := context.Background()
	_, err := m.ctrl.AwaitSetup(ctx)
	require.NoError(t, err)
	require.NoError(t, m.ctrl.SetSetup("Blank", "MVVMBasic"))
	require.NoError(t, m.ctrl.Next(ctx))

	err = m.ctrl.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, wizard.StepTemplates, m.ctrl.Step())
	assert.Empty(t, m.ctrl.Licenses())
}

func TestControllerCancelAbandonsInitialization(t *testing.T) {
	m := newMockedWizard(t)
	started := make(chan struct{})
	m.setup.EXPECT().InitializeSetup(gomock.Any()).DoAndReturn(func(ctx context.Context) (catalog.Setup, error) {
		close(started)
		<-ctx.Done()
		return catalog.Setup{}, ctx.Err()
	})
	m.observer.EXPECT().Transitioned(wizard.StepProjectSetup, wizard.StepCancelled)
	m.host.EXPECT().Close(gomock.Nil(), false).Times(1)

	task, err := m.ctrl.TemplatesAvailable(context.Background())
	require.NoError(t, err)
	<-started
	require.NoError(t, m.ctrl.Cancel())

	<-task.Done()
	_, err = task.Wait(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, m.ctrl.Cancel(), wizard.ErrWizardClosed)
}

func TestControllerStaleSetupNotifiesObserver(t *testing.T) {
	m := newMockedWizard(t)
	m.catalogSetup()
	m.realComposer()
	m.host.EXPECT().Navigate(gomock.Any()).AnyTimes()
	m.observer.EXPECT().Transitioned(gomock.Any(), gomock.Any()).AnyTimes()
	m.observer.EXPECT().LicensesChanged(gomock.Any()).AnyTimes()
	m.observer.EXPECT().SetupChanged(gomock.Any()).Do(func(previous wizard.TemplateContext) {
		assert.Equal(t, "Blank", previous.ProjectType.Name)
		assert.Equal(t, "MVVMBasic", previous.Framework.Name)
	}).Times(1)
	m.observer.EXPECT().StatusChanged(gomock.Any()).Do(func(status wizard.Status) {
		assert.Equal(t, wizard.StatusWarning, status.Kind)
	}).Times(1)

	ctx := context.Background()
	_, err := m.ctrl.AwaitSetup(ctx)
	require.NoError(t, err)
	require.NoError(t, m.ctrl.SetSetup("Blank", "MVVMBasic"))
	require.NoError(t, m.ctrl.Next(ctx))
	require.NoError(t, m.ctrl.AddPage(ctx, "Map", "page.map"))
	require.NoError(t, m.ctrl.Back())
	require.NoError(t, m.ctrl.SetSetup("Blank", "CodeBehind"))
	require.NoError(t, m.ctrl.Next(ctx))

	assert.False(t, m.ctrl.State().HasTemplates())
}
